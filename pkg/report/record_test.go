package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	r := NewRecord()
	r.Header("Radial Build")
	r.Layer("Machine bore", "dr_bore", 1.9, 1.9)
	r.Layer("Central solenoid", "dr_cs", 0.55, 2.45)
	r.Value("ripple", "ripple", 0.6)
	r.Header("Vertical Build")
	r.Layer("Midplane", "", 0.0, 0.0)
	r.IntValue("Divertor null switch", "i_single_null", 1)
	r.Value("max half-height", "hmax", 7.62)
	return r
}

func TestRecordOrdering(t *testing.T) {
	r := sampleRecord()

	require.Len(t, r.Sections, 2)
	assert.Equal(t, "Radial Build", r.Sections[0].Title)
	assert.Equal(t, "Vertical Build", r.Sections[1].Title)

	// Layers keep emission order within their section.
	layers := r.Sections[0].Layers
	require.Len(t, layers, 2)
	assert.Equal(t, "dr_bore", layers[0].Symbol)
	assert.Equal(t, "dr_cs", layers[1].Symbol)
}

func TestRecordEntriesBeforeHeader(t *testing.T) {
	// Entries emitted before any header land in an implicit untitled
	// section instead of being dropped.
	r := NewRecord()
	r.Value("stray", "x", 1.0)

	require.Len(t, r.Sections, 1)
	assert.Equal(t, "", r.Sections[0].Title)
	v, ok := r.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestLookupLastWins(t *testing.T) {
	r := NewRecord()
	r.Header("first")
	r.Value("ripple", "ripple", 1.5)
	r.Header("second")
	r.Value("ripple", "ripple", 0.6)

	v, ok := r.Lookup("ripple")
	require.True(t, ok)
	assert.Equal(t, 0.6, v)

	_, ok = r.Lookup("absent")
	assert.False(t, ok)
}

func TestIntValueLookup(t *testing.T) {
	r := sampleRecord()
	v, ok := r.Lookup("i_single_null")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestNamedLayersSkipsDividers(t *testing.T) {
	r := sampleRecord()

	layers := r.NamedLayers()
	require.Len(t, layers, 2)
	for _, l := range layers {
		assert.NotEmpty(t, l.Symbol)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	r := sampleRecord()

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestMsgpackRoundTrip(t *testing.T) {
	r := sampleRecord()

	var buf bytes.Buffer
	require.NoError(t, r.WriteMsgpack(&buf))

	back, err := ReadMsgpack(&buf)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	_, err := ReadJSON(bytes.NewBufferString("not json"))
	assert.Error(t, err)
}
