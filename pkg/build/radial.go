package build

import (
	"math"

	"github.com/fusionkit/torus/pkg/faults"
	"github.com/fusionkit/torus/pkg/geometry"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
	"github.com/fusionkit/torus/pkg/ripple"
)

// Radial computes the radial build of the machine, from the centreline out
// to the outer edge of the TF coil outboard leg, and writes the solved
// radii and first-wall areas back into p.
//
// The step order encodes the physical stacking and must not be rearranged:
// each solved radius feeds the next layer. When sink is non-nil the full
// ordered layer table and named results are emitted to it.
func (s *Solver) Radial(p *params.Machine, sink report.Sink) {
	b := &p.Build
	tf := &p.TF
	g := &p.Geometry

	// Detailed blanket model supplies the blanket as three sub-layers per
	// side; collapse them into the single-layer thicknesses first.
	if b.BlanketModel > 0 {
		b.BlanketIn = b.BlanketUnitIn + b.BlanketManifoldIn + b.BlanketBackIn
		b.BlanketOut = b.BlanketUnitOut + b.BlanketManifoldOut + b.BlanketBackOut
		b.ShieldTop = 0.5 * (b.ShieldIn + b.ShieldOut)
	}

	// Top/bottom blanket thickness.
	b.BlanketTop = 0.5 * (b.BlanketIn + b.BlanketOut)

	// The top scrape-off gap cannot be thinner than the mean midplane gap.
	if p.Plasma.Null == params.NullSingle {
		b.VGapTop = math.Max(0.5*(b.SOLIn+b.SOLOut), b.VGapTop)
	}

	// Central solenoid precompression structure from the force balance.
	if b.Precomp {
		b.PrecompThickness = b.PrecompForce /
			(2.0 * math.Pi * b.PrecompFraction * b.PrecompStress * (b.Bore + b.Bore + b.CSThickness))
	} else {
		b.PrecompThickness = 0.0
	}

	// TF coil inboard leg inner radius. The coil sits either inside the
	// CS bore or outside the solenoid stack; the two orderings are
	// mutually exclusive.
	if b.TFInsideCS {
		g.RTFInboardIn = b.Bore - tf.InboardThickness - b.CSTFGap
	} else {
		g.RTFInboardIn = b.Bore + b.CSThickness + b.PrecompThickness + b.CSTFGap
	}

	// Exactly one of the coil thickness and the winding-pack thickness is
	// a free parameter; the other is derived.
	if tf.WPFree {
		if tf.Tech == params.TechSuperconducting {
			// SC coil thickness is defined along the wedge diagonal.
			tf.InboardThickness = (g.RTFInboardIn+tf.WPThickness+tf.CaseFront+tf.CaseNose)/
				math.Cos(math.Pi/tf.N) - g.RTFInboardIn
		} else {
			tf.InboardThickness = tf.WPThickness + tf.CaseFront + tf.CaseNose
		}
	}

	g.RTFInboardMid = g.RTFInboardIn + 0.5*tf.InboardThickness
	g.RTFInboardOut = g.RTFInboardIn + tf.InboardThickness

	if !tf.WPFree {
		if tf.Tech == params.TechSuperconducting {
			tf.WPThickness = math.Cos(math.Pi/tf.N)*g.RTFInboardOut -
				g.RTFInboardIn - tf.CaseFront - tf.CaseNose
		} else {
			tf.WPThickness = tf.InboardThickness - tf.CaseFront - tf.CaseNose
		}
	}

	s.centrepostTop(p)

	// Vacuum vessel plasma-facing radius, then the neutron shield.
	if b.TFInsideCS {
		g.RVVInboardOut = g.RTFInboardOut + b.CSThickness + b.CSTFGap + b.PrecompThickness +
			b.TFThermalGap + b.ThermalShieldIn + b.VVGapIn + b.VVIn
	} else {
		g.RVVInboardOut = g.RTFInboardOut + b.TFThermalGap + b.ThermalShieldIn + b.VVGapIn + b.VVIn
	}
	g.RShInboardIn = g.RVVInboardOut
	g.RShInboardOut = g.RShInboardIn + b.ShieldIn

	// Stack outward to the plasma centre; equals rmajor for a consistent
	// parameter set.
	g.RBuild = g.RShInboardOut + b.BlanketGap + b.BlanketIn + b.FirstWallIn +
		b.SOLIn + p.Plasma.RMinor

	// Plasma-boundary shield edges computed directly from the plasma
	// position; the redundant path for the consistency check above.
	g.RShieldInner = p.Plasma.RMajor - p.Plasma.RMinor - b.SOLIn - b.FirstWallIn -
		b.BlanketIn - b.ShieldIn
	g.RShieldOuter = p.Plasma.RMajor + p.Plasma.RMinor + b.SOLOut + b.FirstWallOut +
		b.BlanketOut + b.ShieldOut

	// Outboard leg thickness: equal for SC, footprint-scaled for resistive.
	if tf.Tech != params.TechSuperconducting {
		tf.OutboardThickness = tf.FootprintRatio * tf.InboardThickness
	} else {
		tf.OutboardThickness = tf.InboardThickness
	}

	// First estimate of the outboard leg centre radius.
	g.RTFOutboardMid = g.RShieldOuter + b.BlanketGap + b.VVOut + b.OutboardGapMin +
		b.ThermalShieldOut + b.TFThermalGap + 0.5*tf.OutboardThickness

	g.TFRadialBore = (g.RTFOutboardMid - 0.5*tf.OutboardThickness) -
		(g.RTFInboardMid - 0.5*tf.InboardThickness)

	// Ripple feedback: if the allowed ripple needs a larger outboard
	// radius, move the leg outward and absorb the difference in the
	// vessel-to-coil gap.
	rip := s.ripple.Compute(p, tf.MaxRipple, g.RTFOutboardMid)
	if rip.MinOutboardRadius > g.RTFOutboardMid {
		g.RTFOutboardMid = rip.MinOutboardRadius
		b.OutboardGap = g.RTFOutboardMid - 0.5*tf.OutboardThickness - b.VVOut -
			g.RShieldOuter - b.ThermalShieldOut - b.TFThermalGap - b.BlanketGap
		g.TFRadialBore = (g.RTFOutboardMid - 0.5*tf.OutboardThickness) -
			(g.RTFInboardMid - 0.5*tf.InboardThickness)
	} else {
		b.OutboardGap = b.OutboardGapMin
	}

	// Re-evaluate at the final radius; this pass's ripple and flag are the
	// reported ones.
	rip = s.ripple.Compute(p, tf.MaxRipple, g.RTFOutboardMid)
	tf.Ripple = rip.RipplePct

	s.firstWallArea(p)

	if sink != nil {
		s.reportRadial(p, rip, sink)
	}
}

// centrepostTop resolves the top radius of a tight-aspect-ratio resistive
// centrepost. For every other configuration the top radius equals the
// midplane outer radius.
func (s *Solver) centrepostTop(p *params.Machine) {
	b := &p.Build
	tf := &p.TF
	g := &p.Geometry

	// Largest top radius the plasma shape and inboard shielding allow.
	shapeLimit := p.Plasma.RMajor - p.Plasma.RMinor*p.Plasma.Triang -
		(b.TFThermalGap + b.ThermalShieldIn + b.ShieldIn + b.BlanketGap +
			b.BlanketIn + b.FirstWallIn + 3.0*b.SOLIn) + tf.TopAdjust

	if p.Plasma.Tight && tf.Tech != params.TechSuperconducting {
		switch tf.TopMode {
		case params.TopFromShape:
			tf.TopRadius = shapeLimit
			if tf.TopRadius < 1.01*g.RTFInboardOut {
				s.Faults.Report(faults.CodeTopRadiusBelowMin,
					[]float64{tf.TopRadius, g.RTFInboardOut}, nil)
				tf.TopRadius = 1.01 * g.RTFInboardOut
			}
			g.RCPTopRatio = tf.TopRadius / g.RTFInboardOut

		case params.TopUser:
			if tf.TopRadius < 1.01*g.RTFInboardOut {
				s.Faults.Report(faults.CodeTopRadiusBelowMin,
					[]float64{tf.TopRadius, g.RTFInboardOut}, nil)
				tf.TopRadius = 1.01 * g.RTFInboardOut
			}
			g.RCPTopRatio = tf.TopRadius / g.RTFInboardOut

		case params.TopFraction:
			tf.TopRadius = tf.TopFractionValue * g.RTFInboardOut
		}
	} else {
		tf.TopRadius = g.RTFInboardOut
	}

	// A fixed or fractional top radius can exceed what the plasma shape
	// allows; this is reported but not corrected.
	if tf.TopMode != params.TopFromShape && tf.TopRadius > shapeLimit {
		s.Faults.Report(faults.CodeTopRadiusAboveShapeLimit, []float64{tf.TopRadius}, nil)
	}
}

// firstWallArea computes the first-wall surface area from one of the two
// cross-section models and applies the divertor and heating/current-drive
// coverage reductions.
func (s *Solver) firstWallArea(p *params.Machine) {
	b := &p.Build
	g := &p.Geometry

	// Half-height of the first wall internal surface. The bottom extent
	// runs to the divertor; the top extent depends on the null
	// configuration.
	hbot := p.Plasma.HalfHeight() + b.VGapXPoint + p.Divertor.Structure -
		b.BlanketTop - 0.5*(b.FirstWallIn+b.FirstWallOut)
	var htop float64
	if p.Plasma.Null == params.NullDouble {
		htop = hbot
	} else {
		htop = p.Plasma.HalfHeight() + b.VGapTop
	}
	hfw := 0.5 * (htop + hbot)

	if p.Plasma.Tight || b.FWModel == params.FWDee {
		// D-shaped cross-section.
		r1 := p.Plasma.RMajor - p.Plasma.RMinor - b.SOLIn
		r2 := (p.Plasma.RMajor + p.Plasma.RMinor + b.SOLOut) - r1
		g.FWAreaIn, g.FWAreaOut, g.FWArea = geometry.DShellArea(r1, r2, hfw)
	} else {
		// Two-ellipse cross-section centred over the plasma top.
		r1 := p.Plasma.RMajor - p.Plasma.RMinor*p.Plasma.Triang
		r2 := r1 - (p.Plasma.RMajor - p.Plasma.RMinor - b.SOLIn)
		r3 := (p.Plasma.RMajor + p.Plasma.RMinor + b.SOLOut) - r1
		g.FWAreaIn, g.FWAreaOut, g.FWArea = geometry.EShellArea(r1, r2, r3, hfw)
	}

	// Coverage reduction; the divertor term doubles for double-null.
	var cov float64
	if p.Plasma.Null == params.NullDouble {
		cov = 1.0 - 2.0*b.DivCoverage - b.HCDCoverage
	} else {
		cov = 1.0 - b.DivCoverage - b.HCDCoverage
	}
	g.FWAreaIn *= cov
	g.FWAreaOut *= cov
	g.FWArea = g.FWAreaIn + g.FWAreaOut

	if g.FWAreaOut <= 0.0 {
		s.Faults.Report(faults.CodeOutboardAreaCollapse,
			[]float64{b.DivCoverage, b.HCDCoverage}, nil)
	}
}

// reportRadial emits the ordered radial layer table, centreline outward.
func (s *Solver) reportRadial(p *params.Machine, rip ripple.Result, sink report.Sink) {
	b := &p.Build
	tf := &p.TF
	g := &p.Geometry

	sink.Header("Radial Build")

	if rip.Flag != ripple.OK {
		sink.Comment("(Ripple result may not be accurate, as the fit was outside")
		sink.Comment(" its range of applicability.)")
		s.Faults.Report(faults.CodeRippleFitExceeded, nil, nil)

		switch rip.Flag {
		case ripple.OutOfFitRange:
			s.Faults.Report(faults.CodeRippleWPRatioOutOfRange, []float64{rip.WPRatio}, nil)
		case ripple.CoilCountOutOfRange:
			s.Faults.Report(faults.CodeRippleCoilCountOutOfRange, nil, []int{int(tf.N)})
		default:
			s.Faults.Report(faults.CodeRippleEdgeRatioOutOfRange,
				[]float64{p.EdgeRadius() / g.RTFOutboardMid}, nil)
		}
	}

	tfInCS := 0
	if b.TFInsideCS {
		tfInCS = 1
	}
	sink.IntValue("TF coil radial placement switch", "tf_in_cs", tfInCS)
	sink.Value("Inboard build thickness (m)", "dr_inboard_build", p.Plasma.RMajor-p.Plasma.RMinor)
	sink.Value("TF coil ripple at plasma edge (%)", "ripple", tf.Ripple)

	if b.TFInsideCS {
		sink.Comment("(The stated machine bore is just the hollow space; the bore")
		sink.Comment(" used for calculations is dr_bore + dr_tf_inboard + dr_cs_tf_gap)")
		if tf.Bucking >= 2 {
			sink.Comment("(Bore hollow space is filled by a solid wedge-support cylinder)")
		}
	}

	radius := 0.0
	sink.Layer("Device centreline", "", 0.0, radius)

	switch {
	case b.TFInsideCS && tf.Bucking >= 2:
		hollow := b.Bore - tf.InboardThickness - b.CSTFGap
		radius += hollow
		sink.Layer("Machine bore wedge support cylinder", "dr_bore", hollow, radius)
	case b.TFInsideCS:
		hollow := b.Bore - tf.InboardThickness - b.CSTFGap
		radius += hollow
		sink.Layer("Machine bore hole", "dr_bore", hollow, radius)
	default:
		radius += b.Bore
		sink.Layer("Machine bore", "dr_bore", b.Bore, radius)
	}

	if b.TFInsideCS {
		radius += tf.InboardThickness
		sink.Layer("TF coil inboard leg (in bore)", "dr_tf_inboard", tf.InboardThickness, radius)
		radius += b.CSTFGap
		sink.Layer("CS precompression to TF coil radial gap", "dr_cs_tf_gap", b.CSTFGap, radius)
	}

	radius += b.CSThickness
	sink.Layer("Central solenoid", "dr_cs", b.CSThickness, radius)

	radius += b.PrecompThickness
	sink.Layer("CS precompression", "dr_cs_precomp", b.PrecompThickness, radius)

	if !b.TFInsideCS {
		radius += b.CSTFGap
		sink.Layer("CS precompression to TF coil radial gap", "dr_cs_tf_gap", b.CSTFGap, radius)
		radius += tf.InboardThickness
		sink.Layer("TF coil inboard leg", "dr_tf_inboard", tf.InboardThickness, radius)
	}

	radius += b.TFThermalGap
	sink.Layer("TF coil inboard leg insulation gap", "dr_tf_shld_gap", b.TFThermalGap, radius)

	radius += b.ThermalShieldIn
	sink.Layer("Thermal shield, inboard", "dr_shld_thermal_inboard", b.ThermalShieldIn, radius)

	radius += b.VVGapIn
	sink.Layer("Thermal shield to vessel radial gap", "dr_shld_vv_gap_inboard", b.VVGapIn, radius)

	radius += b.VVIn
	sink.Layer("Inboard vacuum vessel", "dr_vv_inboard", b.VVIn, radius)

	radius += b.ShieldIn
	sink.Layer("Inner radiation shield", "dr_shld_inboard", b.ShieldIn, radius)

	radius += b.BlanketGap
	sink.Layer("Gap", "dr_shld_blkt_gap", b.BlanketGap, radius)

	radius += b.BlanketIn
	sink.Layer("Inboard blanket", "dr_blkt_inboard", b.BlanketIn, radius)

	radius += b.FirstWallIn
	sink.Layer("Inboard first wall", "dr_fw_inboard", b.FirstWallIn, radius)

	radius += b.SOLIn
	sink.Layer("Inboard scrape-off", "dr_fw_plasma_gap_inboard", b.SOLIn, radius)

	radius += p.Plasma.RMinor
	sink.Layer("Plasma geometric centre", "rminor", p.Plasma.RMinor, radius)

	radius += p.Plasma.RMinor
	sink.Layer("Plasma outboard edge", "rminor", p.Plasma.RMinor, radius)

	radius += b.SOLOut
	sink.Layer("Outboard scrape-off", "dr_fw_plasma_gap_outboard", b.SOLOut, radius)

	radius += b.FirstWallOut
	sink.Layer("Outboard first wall", "dr_fw_outboard", b.FirstWallOut, radius)

	radius += b.BlanketOut
	sink.Layer("Outboard blanket", "dr_blkt_outboard", b.BlanketOut, radius)

	radius += b.BlanketGap
	sink.Layer("Gap", "dr_shld_blkt_gap", b.BlanketGap, radius)

	radius += b.ShieldOut
	sink.Layer("Outer radiation shield", "dr_shld_outboard", b.ShieldOut, radius)

	radius += b.VVOut
	sink.Layer("Outboard vacuum vessel", "dr_vv_outboard", b.VVOut, radius)

	radius += b.OutboardGap
	sink.Layer("Vessel to TF gap", "gapsto", b.OutboardGap, radius)

	radius += b.ThermalShieldOut
	sink.Layer("Outboard thermal shield", "dr_shld_thermal_outboard", b.ThermalShieldOut, radius)

	radius += b.TFThermalGap
	sink.Layer("Gap", "dr_tf_shld_gap", b.TFThermalGap, radius)

	radius += tf.OutboardThickness
	sink.Layer("TF coil outboard leg", "dr_tf_outboard", tf.OutboardThickness, radius)

	sink.Value("First wall area, inboard (m2)", "fwareaib", g.FWAreaIn)
	sink.Value("First wall area, outboard (m2)", "fwareaob", g.FWAreaOut)
	sink.Value("First wall area, total (m2)", "fwarea", g.FWArea)

	if p.Beam.Enabled {
		sink.Value("Width of neutral beam duct between TF coils (m)", "beamwd", p.Beam.Width)
	}
}
