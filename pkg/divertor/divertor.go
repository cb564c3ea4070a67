// Package divertor determines the divertor geometry: X-point position,
// strike points, plate corners and the resulting divertor height.
//
// The inboard and outboard plasma surfaces are approximated by best-fit
// circular arcs and followed past the X-point along straight legs. All
// formulas are exact closed forms; there is no iteration.
//
// The arcsine relations for the leg angles have no domain guard. Shape
// parameters that push an argument outside [-1, 1] propagate NaN through
// every dependent quantity rather than being clamped, so a non-physical
// configuration is visible in the output instead of silently corrected.
package divertor

import (
	"math"

	"github.com/fusionkit/torus/pkg/params"
)

// Point is a position in the poloidal plane: radial coordinate r, vertical
// coordinate z (z = 0 at the midplane, negative below).
type Point struct {
	R float64
	Z float64
}

// Result describes the computed lower divertor geometry. For a symmetric
// double-null device the upper divertor is the mirror image across the
// midplane.
type Result struct {
	// Simplified is set for tight-aspect-ratio devices, where only Height
	// is computed (1.75*rminor) and every other field is zero.
	Simplified bool

	Height float64 // vertical extent of the divertor envelope (m)

	ArcRadiusOut float64 // rco, outboard boundary arc radius (m)
	ArcRadiusIn  float64 // rci, inboard boundary arc radius (m)
	ThetaOut     float64 // angle between vertical and outer leg (rad)
	ThetaIn      float64 // angle between vertical and inner leg (rad)

	XPoint    Point
	StrikeIn  Point
	StrikeOut Point

	PlateInTop     Point
	PlateInBottom  Point
	PlateOutTop    Point
	PlateOutBottom Point
}

// Compute derives the divertor geometry for the machine's lower X-point.
func Compute(p *params.Machine) Result {
	if p.Plasma.Tight {
		// Spherical tokamak: simple envelope scaling, no leg geometry.
		return Result{Simplified: true, Height: 1.75 * p.Plasma.RMinor}
	}

	kap := p.Plasma.Kappa
	tri := p.Plasma.Triang
	a := p.Plasma.RMinor

	// Radii of the arcs fitting the outboard and inboard plasma boundary
	// near the X-point.
	rco := 0.5 * math.Sqrt((a*a*sq(sq(tri+1.0)+kap*kap))/sq(tri+1.0))
	rci := 0.5 * math.Sqrt((a*a*sq(sq(tri-1.0)+kap*kap))/sq(tri-1.0))

	// Leg angles from vertical. The inboard arc sets the outer leg angle
	// and vice versa.
	thetao := math.Asin(1.0 - a*(1.0-tri)/rci)
	thetai := math.Asin(1.0 - a*(1.0+tri)/rco)

	// Lower X-point.
	xpt := Point{
		R: p.Plasma.RMajor - tri*a,
		Z: -kap * a,
	}

	// Strike points: project along each leg by its poloidal length.
	spi := Point{
		R: xpt.R - p.Divertor.LegLengthIn*math.Cos(thetai),
		Z: xpt.Z - p.Divertor.LegLengthIn*math.Sin(thetai),
	}
	spo := Point{
		R: xpt.R + p.Divertor.LegLengthOut*math.Cos(thetao),
		Z: xpt.Z - p.Divertor.LegLengthOut*math.Sin(thetao),
	}

	// Plate end corners: half a plate length either side of the strike
	// point, rotated by the leg-to-plate angle.
	halfI := p.Divertor.PlateLengthIn / 2.0
	halfO := p.Divertor.PlateLengthOut / 2.0
	angI := thetai + p.Divertor.PlateAngleIn
	angO := thetao + p.Divertor.PlateAngleOut

	res := Result{
		Height:       0,
		ArcRadiusOut: rco,
		ArcRadiusIn:  rci,
		ThetaOut:     thetao,
		ThetaIn:      thetai,
		XPoint:       xpt,
		StrikeIn:     spi,
		StrikeOut:    spo,
		PlateInTop:     Point{R: spi.R + halfI*math.Cos(angI), Z: spi.Z + halfI*math.Sin(angI)},
		PlateInBottom:  Point{R: spi.R - halfI*math.Cos(angI), Z: spi.Z - halfI*math.Sin(angI)},
		PlateOutTop:    Point{R: spo.R - halfO*math.Cos(angO), Z: spo.Z + halfO*math.Sin(angO)},
		PlateOutBottom: Point{R: spo.R + halfO*math.Cos(angO), Z: spo.Z - halfO*math.Sin(angO)},
	}

	res.Height = math.Max(res.PlateInTop.Z, res.PlateOutTop.Z) -
		math.Min(res.PlateOutBottom.Z, res.PlateInBottom.Z)

	return res
}

func sq(x float64) float64 { return x * x }
