package params

import (
	"strings"
	"testing"
)

func TestRename(t *testing.T) {
	repl, deprecated, known := Rename("bore")
	if !known || deprecated || len(repl) != 1 || repl[0] != "dr_bore" {
		t.Errorf("Rename(bore) = %v %v %v", repl, deprecated, known)
	}

	// Case-insensitive lookup.
	if _, _, known := Rename("TFNO"); !known {
		t.Error("Rename should be case-insensitive")
	}

	// Removed without replacement.
	repl, deprecated, known = Rename("rdewex")
	if !known || !deprecated || repl != nil {
		t.Errorf("Rename(rdewex) = %v %v %v", repl, deprecated, known)
	}

	// Split parameter.
	repl, deprecated, known = Rename("thshield")
	if !known || deprecated || len(repl) != 3 {
		t.Errorf("Rename(thshield) = %v %v %v", repl, deprecated, known)
	}

	if _, _, known := Rename("rmajor"); known {
		t.Error("current symbols should not be in the rename table")
	}
}

func TestMigrateTOML(t *testing.T) {
	in := []byte(`[plasma]
rmajor = 8.0
snull = 1

[build]
bore = 1.9
dr_cs = 0.55
  vgap = 1.6
`)
	out, changes, err := MigrateTOML(in)
	if err != nil {
		t.Fatalf("MigrateTOML: %v", err)
	}

	got := string(out)
	for _, want := range []string{"i_single_null = 1", "dr_bore = 1.9", "  vgap_xpoint_divertor = 1.6"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	// Untouched keys pass through.
	if !strings.Contains(got, "dr_cs = 0.55") {
		t.Errorf("current key rewritten:\n%s", got)
	}

	if len(changes) != 3 {
		t.Fatalf("changes = %v, want 3", changes)
	}
	if changes[1].Line != 6 || changes[1].Old != "bore" || changes[1].New != "dr_bore" {
		t.Errorf("change[1] = %+v", changes[1])
	}
}

func TestMigrateTOMLSplitKey(t *testing.T) {
	_, _, err := MigrateTOML([]byte("thshield = 0.05\n"))
	if err == nil || !strings.Contains(err.Error(), "split") {
		t.Errorf("err = %v, want split-key error", err)
	}
}

func TestMigrateTOMLRemovedKey(t *testing.T) {
	_, _, err := MigrateTOML([]byte("igeom = 1\n"))
	if err == nil || !strings.Contains(err.Error(), "no replacement") {
		t.Errorf("err = %v, want removed-key error", err)
	}
}
