package build

import (
	"math"

	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
)

// PortSize finds the neutral beam tangency radius and the maximum tangency
// radius that still clears the gap between adjacent TF outboard legs. Both
// are written back into p.Beam. The construction works in the horizontal
// midplane: the duct, including its shielding, must thread the wedge-shaped
// opening between two neighbouring coil legs.
func (s *Solver) PortSize(p *params.Machine, sink report.Sink) {
	if sink == nil {
		sink = report.Null
	}

	p.Beam.TangencyRadius = p.Beam.TangencyFraction * p.Plasma.RMajor

	// Toroidal angle between adjacent TF coils.
	omega := 2.0 * math.Pi / p.TF.N

	// Half-width of the outboard leg in the toroidal direction.
	a := 0.5 * p.TF.OutboardWidth
	if math.IsInf(a, 0) {
		s.Logger.Error("outboard leg half-width is inf, kludging to 1e10")
		a = 1e10
	}

	// Radial thickness of the outboard leg.
	b := p.TF.OutboardThickness
	if math.IsInf(b, 0) {
		s.Logger.Error("outboard leg thickness is inf, kludging to 1e10")
		b = 1e10
	}

	// Duct width including shielding on both sides.
	c := p.Beam.Width + 2.0*p.Beam.ShieldThickness

	// Major radius of the inner edge of the outboard leg.
	d := p.Geometry.RTFOutboardMid - 0.5*b
	if math.IsInf(d, 0) {
		s.Logger.Error("outboard leg inner radius is inf, kludging to 1e10")
		d = 1e10
	}

	e := math.Sqrt(a*a + (d+b)*(d+b))
	f := math.Sqrt(a*a + d*d)

	theta := omega - math.Atan(a/d)
	phi := theta - math.Asin(a/e)

	// Clear width of the opening, by the cosine rule.
	g := math.Sqrt(e*e + f*f - 2.0*e*f*math.Cos(phi))

	if g > c {
		h := math.Sqrt(g*g - c*c)
		alpha := math.Atan(h / c)
		eps := math.Asin(e*math.Sin(phi)/g) - alpha
		p.Beam.MaxTangencyRadius = f*math.Cos(eps) - 0.5*c
	} else {
		// Coil separation is too narrow for the beam duct.
		s.Faults.Report(faults.CodeBeamDuctTooNarrow, []float64{g, c}, nil)
		p.Beam.MaxTangencyRadius = 0.0
	}

	sink.Header("Neutral beam access")
	sink.Value("Beam duct width incl. shielding (m)", "beamwd+2*nbshield", c)
	sink.Value("Clear width between outboard TF legs (m)", "g", g)
	sink.Value("Beam tangency radius (m)", "rtanbeam", p.Beam.TangencyRadius)
	sink.Value("Maximum tangency radius (m)", "rtanmax", p.Beam.MaxTangencyRadius)
}
