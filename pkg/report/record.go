package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// LayerEntry is one recorded build layer.
type LayerEntry struct {
	Desc       string  `json:"desc" msgpack:"desc"`
	Symbol     string  `json:"symbol,omitempty" msgpack:"symbol,omitempty"`
	Thickness  float64 `json:"thickness" msgpack:"thickness"`
	Cumulative float64 `json:"cumulative" msgpack:"cumulative"`
}

// ValueEntry is one recorded named scalar.
type ValueEntry struct {
	Label  string  `json:"label" msgpack:"label"`
	Symbol string  `json:"symbol" msgpack:"symbol"`
	Value  float64 `json:"value" msgpack:"value"`
}

// Section groups the entries emitted under one header.
type Section struct {
	Title  string       `json:"title" msgpack:"title"`
	Layers []LayerEntry `json:"layers,omitempty" msgpack:"layers,omitempty"`
	Values []ValueEntry `json:"values,omitempty" msgpack:"values,omitempty"`
}

// Record is the machine-readable output of an evaluation. Entries keep
// emission order; downstream consumers rely on layer order being physical
// stacking order.
type Record struct {
	Sections []Section `json:"sections" msgpack:"sections"`
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

func (r *Record) current() *Section {
	if len(r.Sections) == 0 {
		r.Sections = append(r.Sections, Section{Title: ""})
	}
	return &r.Sections[len(r.Sections)-1]
}

// Header implements Sink.
func (r *Record) Header(title string) {
	r.Sections = append(r.Sections, Section{Title: title})
}

// Comment implements Sink. Comments are presentation-only and are not
// recorded.
func (r *Record) Comment(string) {}

// Layer implements Sink.
func (r *Record) Layer(desc, symbol string, thickness, cum float64) {
	s := r.current()
	s.Layers = append(s.Layers, LayerEntry{Desc: desc, Symbol: symbol, Thickness: thickness, Cumulative: cum})
}

// Value implements Sink.
func (r *Record) Value(label, symbol string, v float64) {
	s := r.current()
	s.Values = append(s.Values, ValueEntry{Label: label, Symbol: symbol, Value: v})
}

// IntValue implements Sink.
func (r *Record) IntValue(label, symbol string, v int) {
	r.Value(label, symbol, float64(v))
}

// Lookup returns the last value recorded under symbol.
func (r *Record) Lookup(symbol string) (float64, bool) {
	for i := len(r.Sections) - 1; i >= 0; i-- {
		vs := r.Sections[i].Values
		for j := len(vs) - 1; j >= 0; j-- {
			if vs[j].Symbol == symbol {
				return vs[j].Value, true
			}
		}
	}
	return 0, false
}

// NamedLayers enumerates the record's layers that carry a symbol, in
// order. Synthetic dividers with no symbol are skipped so the returned
// index sequence stays contiguous.
func (r *Record) NamedLayers() []LayerEntry {
	var out []LayerEntry
	for _, s := range r.Sections {
		for _, l := range s.Layers {
			if l.Symbol == "" {
				continue
			}
			out = append(out, l)
		}
	}
	return out
}

// WriteJSON writes the record as indented JSON.
func (r *Record) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}

// WriteMsgpack writes the record in msgpack framing for compact storage of
// large UQ run sets.
func (r *Record) WriteMsgpack(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}

// ReadJSON decodes a record written by WriteJSON.
func ReadJSON(rd io.Reader) (*Record, error) {
	var r Record
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &r, nil
}

// ReadMsgpack decodes a record written by WriteMsgpack.
func ReadMsgpack(rd io.Reader) (*Record, error) {
	var r Record
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &r, nil
}
