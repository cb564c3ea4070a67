package params

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// obsolete maps retired parameter symbols to their current spellings.
// A nil value marks a parameter that was removed without replacement; a
// multi-element value marks a parameter that was split.
//
// The table is consulted by Parse when it meets an unknown key, and by
// MigrateTOML to rewrite old input files wholesale.
var obsolete = map[string][]string{
	"snull":            {"i_single_null"},
	"tfno":             {"n_tf"},
	"itfsup":           {"i_tf_sup"},
	"r_tf_inleg_mid":   {"r_tf_inboard_mid"},
	"rtot":             {"r_tf_outboard_mid"},
	"dr_tf_case_in":    {"thkcas"},
	"dr_tf_case_out":   {"casthi"},
	"thkwp":            {"dr_tf_wp"},
	"deltf":            {"dr_tf_shld_gap"},
	"ddwi":             {"dr_vv_outboard"},
	"bore":             {"dr_bore"},
	"ohcth":            {"dr_cs"},
	"gapoh":            {"dr_cs_tf_gap"},
	"precomp":          {"dr_cs_precomp"},
	"tfcth":            {"dr_tf_inboard"},
	"tfthko":           {"dr_tf_outboard"},
	"gapds":            {"dr_shld_vv_gap_inboard"},
	"d_vv_in":          {"dr_vv_inboard"},
	"d_vv_out":         {"dr_vv_outboard"},
	"shldith":          {"dr_shld_inboard"},
	"shldoth":          {"dr_shld_outboard"},
	"vvblgap":          {"dr_shld_blkt_gap"},
	"blnkith":          {"dr_blkt_inboard"},
	"blnkoth":          {"dr_blkt_outboard"},
	"fwith":            {"dr_fw_inboard"},
	"fwoth":            {"dr_fw_outboard"},
	"scrapli":          {"dr_fw_plasma_gap_inboard"},
	"scraplo":          {"dr_fw_plasma_gap_outboard"},
	"vgap2":            {"vgap_vv_thermalshield"},
	"vgap":             {"vgap_xpoint_divertor"},
	"thshield":         {"dr_shld_thermal_inboard", "dr_shld_thermal_outboard", "thshield_vb"},
	"clhsv":            {"dz_tf_cryostat"},
	"rdewex":           nil,
	"igeom":            nil,
	"fgamp":            nil,
	"divleg_profile_inner": nil,
	"divleg_profile_outer": nil,
}

// Rename looks up an obsolete parameter symbol. It returns the current
// replacement symbols, whether the symbol is deprecated with no
// replacement, and whether the symbol is known to the table at all.
func Rename(name string) (repl []string, deprecated, known bool) {
	repl, known = obsolete[strings.ToLower(name)]
	if !known {
		return nil, false, false
	}
	return repl, repl == nil, true
}

// Change records one key rewrite performed by MigrateTOML.
type Change struct {
	Line int
	Old  string
	New  string
}

var tomlKeyRe = regexp.MustCompile(`^(\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*=)`)

// MigrateTOML rewrites obsolete parameter keys in a TOML document to their
// current names. Keys that were split or removed cannot be rewritten
// automatically and produce an error naming the offending line.
func MigrateTOML(data []byte) ([]byte, []Change, error) {
	var (
		out     bytes.Buffer
		changes []Change
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if m := tomlKeyRe.FindStringSubmatch(text); m != nil {
			key := m[2]
			if repl, deprecated, known := Rename(key); known {
				if deprecated {
					return nil, nil, fmt.Errorf("line %d: parameter %q was removed and has no replacement", line, key)
				}
				if len(repl) > 1 {
					return nil, nil, fmt.Errorf("line %d: parameter %q was split into %v; migrate by hand", line, key, repl)
				}
				text = m[1] + repl[0] + text[len(m[1])+len(key):]
				changes = append(changes, Change{Line: line, Old: key, New: repl[0]})
			}
		}
		out.WriteString(text)
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan input: %w", err)
	}
	return out.Bytes(), changes, nil
}

// tomlLeaf strips the table prefix from a dotted TOML key.
func tomlLeaf(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
