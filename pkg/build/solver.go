// Package build derives the radial and vertical build of a tokamak: the
// ordered concentric layer stack from the machine centreline out to the TF
// coil outboard leg, and the layer stack from cryostat roof to cryostat
// floor.
//
// Both solvers mutate the device parameter record in place, writing solved
// radii, heights and areas back into it. They are purely arithmetic: a
// single evaluation performs no I/O beyond the optional report sink and
// runs in constant time. The radial solver contains the one feedback step
// in the chain, where the ripple-constrained minimum outboard radius can
// push the TF outboard leg outward.
package build

import (
	"github.com/charmbracelet/log"

	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/ripple"
)

// Solver evaluates the build of one device configuration. A Solver is
// stateless between calls apart from its collaborators and may be reused
// across evaluations; concurrent use requires a Reporter and Logger that
// tolerate it.
type Solver struct {
	Logger *log.Logger
	Faults faults.Reporter

	ripple ripple.Model
}

// New returns a solver reporting diagnostics to rep and warnings to logger.
// Either may be nil.
func New(logger *log.Logger, rep faults.Reporter) *Solver {
	if logger == nil {
		logger = log.Default()
	}
	if rep == nil {
		rep = faults.Discard
	}
	return &Solver{
		Logger: logger,
		Faults: rep,
		ripple: ripple.Model{Logger: logger},
	}
}
