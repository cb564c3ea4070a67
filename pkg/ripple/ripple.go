// Package ripple computes the toroidal-field ripple amplitude at the
// outboard plasma edge and the minimum outboard-leg radius that satisfies a
// ripple limit.
//
// The conventional-coil model is a regression fit over parametric field
// calculations; its coefficients are only valid over a bounded range of
// winding-pack width, coil count and edge-radius ratio. Violations are
// reported through the applicability flag, never by refusing to compute.
// The picture-frame coil variant is an exact analytical form with no
// applicability limits.
package ripple

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/fusionkit/torus/pkg/params"
)

// Applicability flags the validity of the fitted ripple model for the
// evaluated configuration.
type Applicability int

const (
	OK Applicability = iota
	OutOfFitRange
	CoilCountOutOfRange
	EdgeRatioOutOfRange
)

// String returns a short label for reports.
func (a Applicability) String() string {
	switch a {
	case OK:
		return "ok"
	case OutOfFitRange:
		return "wp-ratio-out-of-range"
	case CoilCountOutOfRange:
		return "coil-count-out-of-range"
	case EdgeRatioOutOfRange:
		return "edge-ratio-out-of-range"
	}
	return "unknown"
}

// Result is the outcome of one ripple evaluation. It is transient; nothing
// retains it beyond the calling solver.
type Result struct {
	RipplePct         float64 // achieved ripple at the plasma edge (%)
	MinOutboardRadius float64 // outboard-leg centre radius producing the allowed ripple (m)
	Flag              Applicability

	// WPRatio is the dimensionless fit variable x = t_wp_max*n/rmajor,
	// surfaced for diagnostics. Zero for picture-frame coils.
	WPRatio float64
}

// Fit validity bounds for the conventional-coil regression.
const (
	wpRatioMin   = 0.737
	wpRatioMax   = 2.95
	coilCountMin = 16
	coilCountMax = 20
	edgeRatioMin = 0.70
	edgeRatioMax = 0.80
)

// Model evaluates ripple for one machine. The zero value uses the default
// logger; set Logger to route the clamp warnings elsewhere.
type Model struct {
	Logger *log.Logger
}

// Compute returns the ripple at the outboard plasma edge for a coil set
// whose outboard legs are centred at rOutboardMid, and the minimum centre
// radius that would keep the ripple at or under maxRipplePct.
//
// The flag checks run in a fixed order and later checks overwrite earlier
// ones: a configuration violating several bounds reports only the last
// violated check. Callers that need all violations must test the bounds
// themselves.
func (md Model) Compute(p *params.Machine, maxRipplePct, rOutboardMid float64) Result {
	n := p.TF.N

	// Maximum toroidal half-width of the winding pack at the inboard leg.
	var tWPMax float64
	if p.TF.Tech == params.TechSuperconducting {
		rWPMin := p.Geometry.RTFInboardIn + p.TF.CaseNose

		var rWPMax float64
		switch p.TF.WPGeom {
		case params.WPRectangle:
			rWPMax = rWPMin
		case params.WPDoubleRectangle:
			rWPMax = rWPMin + 0.5*p.TF.WPThickness
		case params.WPTrapezoid:
			rWPMax = rWPMin + p.TF.WPThickness
		}

		if p.TF.SidewallIsFraction {
			tWPMax = 2.0 * ((rWPMax-p.TF.SidewallFraction*rWPMin)*math.Tan(math.Pi/n) -
				p.TF.WPInsulation - p.TF.WPInsertionGap)
		} else {
			tWPMax = 2.0 * (rWPMax*math.Tan(math.Pi/n) -
				p.TF.Sidewall - p.TF.WPInsulation - p.TF.WPInsertionGap)
		}
	} else {
		// Resistive magnets: the full case plus winding pack sets the width.
		rWPMax := p.Geometry.RTFInboardIn + p.TF.CaseNose + p.TF.WPThickness
		tWPMax = 2.0 * rWPMax * math.Tan(math.Pi/n)
	}

	edge := p.EdgeRadius()

	if p.TF.Shape == params.ShapePicture {
		// Picture-frame coil: exact analytical ripple, direct inversion.
		return Result{
			RipplePct:         100.0 * math.Pow(edge/rOutboardMid, n),
			MinOutboardRadius: edge / math.Pow(0.01*maxRipplePct, 1.0/n),
			Flag:              OK,
		}
	}

	x := tWPMax * n / p.Plasma.RMajor
	c1 := 0.875 - 0.0557*x
	c2 := 1.617 + 0.0832*x

	res := Result{
		RipplePct: 100.0 * c1 * math.Pow(edge/rOutboardMid, n-c2),
		WPRatio:   x,
	}

	// Invert for the minimum radius, guarding the power-law base against a
	// negative or vanishing value.
	base := 0.01 * maxRipplePct / c1
	if base <= 1e-6 {
		md.logger().Warn("ripple inversion base clamped", "base", base, "clamp", 1e-6)
		base = 1e-6
	}
	res.MinOutboardRadius = edge / math.Pow(base, 1.0/(n-c2))
	if math.IsInf(res.MinOutboardRadius, 0) || math.IsNaN(res.MinOutboardRadius) {
		md.logger().Warn("ripple minimum radius unbounded, substituting 3*(rmajor+rminor)",
			"edge", edge)
		res.MinOutboardRadius = 3.0 * edge
	}

	// Applicability checks, last violated check wins.
	res.Flag = OK
	if x < wpRatioMin || x > wpRatioMax {
		res.Flag = OutOfFitRange
	}
	if n < coilCountMin || n > coilCountMax {
		res.Flag = CoilCountOutOfRange
	}
	if r := edge / rOutboardMid; r < edgeRatioMin || r > edgeRatioMax {
		res.Flag = EdgeRatioOutOfRange
	}

	return res
}

func (md Model) logger() *log.Logger {
	if md.Logger != nil {
		return md.Logger
	}
	return log.Default()
}
