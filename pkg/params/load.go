package params

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/fusionkit/torus/pkg/errors"
)

// Load reads a TOML parameter file and overlays it on the baseline
// defaults. Keys not present in the file keep their default values, so a
// file only needs to name the parameters it changes.
func Load(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameters %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML parameter data over the baseline defaults.
func Parse(data []byte) (*Machine, error) {
	m := Defaults()
	md, err := toml.Decode(string(data), m)
	if err != nil {
		return nil, fmt.Errorf("decode parameters: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		// Unknown keys are almost always renamed symbols; point at the
		// migration table before failing.
		key := undec[0].String()
		if repl, deprecated, known := Rename(tomlLeaf(key)); known {
			if deprecated {
				return nil, apperrors.New(apperrors.ErrCodeInvalidParameter,
					"parameter %q is deprecated and has no replacement", key)
			}
			return nil, apperrors.New(apperrors.ErrCodeInvalidParameter,
				"parameter %q was renamed; use %v (try `torus migrate`)", key, repl)
		}
		return nil, apperrors.New(apperrors.ErrCodeInvalidParameter, "unknown parameter %q", key)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate rejects parameter sets the calculators cannot evaluate at all.
// It deliberately does not police thickness signs: negative thicknesses are
// an upstream inconsistency that the calculators pass through so the defect
// is visible in the output, not a load error.
func (m *Machine) Validate() error {
	if m.TF.N < 1 {
		return fmt.Errorf("n_tf must be at least 1, got %g", m.TF.N)
	}
	if m.Plasma.RMajor <= 0 || m.Plasma.RMinor <= 0 {
		return fmt.Errorf("plasma radii must be positive (rmajor=%g rminor=%g)",
			m.Plasma.RMajor, m.Plasma.RMinor)
	}
	if m.Plasma.RMinor >= m.Plasma.RMajor {
		return fmt.Errorf("rminor %g must be smaller than rmajor %g",
			m.Plasma.RMinor, m.Plasma.RMajor)
	}
	if m.TF.MaxRipple <= 0 {
		return fmt.Errorf("ripmax must be positive, got %g", m.TF.MaxRipple)
	}
	return nil
}
