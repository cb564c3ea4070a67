package build

import (
	"math"

	"github.com/fusionkit/torus/pkg/divertor"
	"github.com/fusionkit/torus/pkg/params"
	"github.com/fusionkit/torus/pkg/report"
)

// Vertical computes the vertical build of the machine, walking from the
// cryostat roof down to the cryostat floor, and writes the TF coil extent,
// the coil/plasma vertical offset, the maximum half-height and the upper
// coil positions back into p.
//
// The single-null walk uses blanket and first-wall layers on top and the
// divertor on the bottom; the double-null walk uses the divertor on both
// ends. The two branches never mix.
func (s *Solver) Vertical(p *params.Machine, sink report.Sink) {
	if sink == nil {
		sink = report.Null
	}
	b := &p.Build
	g := &p.Geometry

	sink.Header("Vertical Build")
	nullSwitch := 0
	if p.Plasma.Null == params.NullSingle {
		nullSwitch = 1
	}
	sink.IntValue("Divertor null switch", "i_single_null", nullSwitch)

	if p.Plasma.Null == params.NullDouble {
		s.verticalDoubleNull(p, sink)
	} else {
		s.verticalSingleNull(p, sink)
	}

	sink.Value("Ratio of CS height to TF coil internal height", "ohhghf", b.CSHeightFraction)
	sink.Comment("*Cryostat roof allowance includes the uppermost PF coil and outer thermal shield.")
	sink.Comment("**Cryostat floor allowance includes the lowermost PF coil, outer thermal shield and gravity support.")

	// Divertor geometry; its computed height fills the X-point gap when
	// the user left the gap unset. If the gap is nonzero the user value
	// stands.
	div := divertor.Compute(p)
	if !div.Simplified {
		g.RStrikeOut = div.StrikeOut.R
	}
	if b.VGapXPoint < 1e-5 {
		b.VGapXPoint = div.Height
	}

	// Height to the inside edge of the TF coil. The coils are symmetric,
	// so this holds for both null configurations.
	g.HMax = p.Plasma.HalfHeight() + b.VGapXPoint + p.Divertor.Structure +
		b.ShieldBottom + b.VVBottom + b.VVThermalGapVer + b.ThermalShieldVer +
		b.TFThermalGap

	// Vertical positions of the upper coils.
	if p.Plasma.Null == params.NullDouble {
		g.HPFUpper = g.HMax + p.TF.InboardThickness
		g.HPFDiff = 0.0
	} else {
		g.HPFUpper = p.TF.InboardThickness + b.TFThermalGap + b.ThermalShieldVer +
			b.VVThermalGapVer + b.VVTop + b.ShieldTop + b.BlanketGap + b.BlanketTop +
			0.5*(b.FirstWallIn+b.FirstWallOut) + b.VGapTop + p.Plasma.HalfHeight()
		g.HPFDiff = (g.HPFUpper - (g.HMax + p.TF.InboardThickness)) / 2.0
	}

	s.cryostat(p, sink)
	s.reportDivertor(p, div, sink)
}

// cryostat derives the cryostat envelope as a flat-topped cylinder wrapped
// around the outermost coil with a uniform clearance, and emits the
// cryostat build section.
func (s *Solver) cryostat(p *params.Machine, sink report.Sink) {
	g := &p.Geometry
	g.RCryostatIn = g.RTFOutboardMid + 0.5*p.TF.OutboardThickness + p.Cryostat.Clearance
	g.ZCryostatHalf = g.HPFUpper + p.Cryostat.Clearance

	rOut := g.RCryostatIn + p.Cryostat.Thickness
	g.VolCryostatInt = math.Pi * g.RCryostatIn * g.RCryostatIn * 2.0 * g.ZCryostatHalf
	g.VolCryostat = math.Pi*(rOut*rOut-g.RCryostatIn*g.RCryostatIn)*2.0*g.ZCryostatHalf +
		2.0*math.Pi*rOut*rOut*p.Cryostat.Thickness

	sink.Header("Cryostat build")
	sink.Value("Cryostat thickness (m)", "dr_cryostat", p.Cryostat.Thickness)
	sink.Value("Cryostat internal radius (m)", "r_cryostat_inboard", g.RCryostatIn)
	sink.Value("Cryostat internal half height (m)", "z_cryostat_half_inside", g.ZCryostatHalf)
	sink.Value("Vertical clearance from highest coil to cryostat (m)", "dz_pf_cryostat", p.Cryostat.Clearance)
	sink.Value("Cryostat structure volume (m^3)", "vol_cryostat", g.VolCryostat)
	sink.Value("Cryostat internal volume (m^3)", "vol_cryostat_internal", g.VolCryostatInt)
}

// verticalDoubleNull walks the symmetric double-null stack.
func (s *Solver) verticalDoubleNull(p *params.Machine, sink report.Sink) {
	b := &p.Build
	g := &p.Geometry
	halfPlasma := p.Plasma.HalfHeight()

	sink.Comment("Double null case")

	vbuild := p.Cryostat.RoofAllowance + p.TF.InboardThickness + b.TFThermalGap +
		b.ThermalShieldVer + b.VVThermalGapVer + b.VVTop + b.ShieldTop +
		p.Divertor.Structure + b.VGapTop + halfPlasma

	// Snapshot of the very top, for the coil/plasma centring offset.
	top := vbuild

	sink.Layer("Cryostat roof structure*", "dz_tf_cryostat", p.Cryostat.RoofAllowance, vbuild)
	vbuild -= p.Cryostat.RoofAllowance

	tfTop := vbuild
	sink.Layer("TF coil", "dr_tf_inboard", p.TF.InboardThickness, vbuild)
	vbuild -= p.TF.InboardThickness

	sink.Layer("Gap", "dr_tf_shld_gap", b.TFThermalGap, vbuild)
	vbuild -= b.TFThermalGap

	sink.Layer("Thermal shield, vertical", "thshield_vb", b.ThermalShieldVer, vbuild)
	vbuild -= b.ThermalShieldVer

	sink.Layer("Gap", "vgap_vv_thermalshield", b.VVThermalGapVer, vbuild)
	vbuild -= b.VVThermalGapVer

	sink.Layer("Vacuum vessel (and shielding)", "d_vv_top+shldtth", b.VVTop+b.ShieldTop, vbuild)
	vbuild -= b.VVTop + b.ShieldTop

	sink.Layer("Divertor structure", "divfix", p.Divertor.Structure, vbuild)
	vbuild -= p.Divertor.Structure

	sink.Layer("Top scrape-off", "vgaptop", b.VGapTop, vbuild)
	vbuild -= b.VGapTop

	sink.Layer("Plasma top", "rminor*kappa", halfPlasma, vbuild)
	vbuild -= halfPlasma

	sink.Layer("Midplane", "", 0.0, vbuild)

	vbuild -= halfPlasma
	sink.Layer("Plasma bottom", "rminor*kappa", halfPlasma, vbuild)

	vbuild -= b.VGapXPoint
	sink.Layer("Lower scrape-off", "vgap_xpoint_divertor", b.VGapXPoint, vbuild)

	vbuild -= p.Divertor.Structure
	sink.Layer("Divertor structure", "divfix", p.Divertor.Structure, vbuild)

	vbuild -= b.ShieldBottom
	vbuild -= b.VVBottom
	sink.Layer("Vacuum vessel (and shielding)", "d_vv_bot+shldlth", b.VVBottom+b.ShieldBottom, vbuild)

	vbuild -= b.VVThermalGapVer
	sink.Layer("Gap", "vgap_vv_thermalshield", b.VVThermalGapVer, vbuild)

	vbuild -= b.ThermalShieldVer
	sink.Layer("Thermal shield, vertical", "thshield_vb", b.ThermalShieldVer, vbuild)

	vbuild -= b.TFThermalGap
	sink.Layer("Gap", "dr_tf_shld_gap", b.TFThermalGap, vbuild)

	vbuild -= p.TF.InboardThickness
	sink.Layer("TF coil", "dr_tf_inboard", p.TF.InboardThickness, vbuild)

	tfHeight := tfTop - vbuild
	g.TFVerticalBore = tfHeight - 2.0*p.TF.InboardThickness

	vbuild -= p.Cryostat.RoofAllowance
	sink.Layer("Cryostat floor structure**", "dz_tf_cryostat", p.Cryostat.RoofAllowance, vbuild)

	g.TFOffset = (top + vbuild) / 2.0
}

// verticalSingleNull walks the asymmetric single-null stack: blanket and
// first wall on top, divertor on the bottom.
func (s *Solver) verticalSingleNull(p *params.Machine, sink report.Sink) {
	b := &p.Build
	g := &p.Geometry
	halfPlasma := p.Plasma.HalfHeight()
	fwTop := 0.5 * (b.FirstWallIn + b.FirstWallOut)

	vbuild := p.Cryostat.RoofAllowance + p.TF.InboardThickness + b.TFThermalGap +
		b.ThermalShieldVer + b.VVThermalGapVer + 0.5*(b.VVTop+b.VVBottom) +
		b.BlanketGap + b.ShieldTop + b.BlanketTop + fwTop + b.VGapTop + halfPlasma

	top := vbuild

	sink.Layer("Cryostat roof structure*", "dz_tf_cryostat", p.Cryostat.RoofAllowance, vbuild)
	vbuild -= p.Cryostat.RoofAllowance

	tfTop := vbuild
	sink.Layer("TF coil", "dr_tf_inboard", p.TF.InboardThickness, vbuild)
	vbuild -= p.TF.InboardThickness

	sink.Layer("Gap", "dr_tf_shld_gap", b.TFThermalGap, vbuild)
	vbuild -= b.TFThermalGap

	sink.Layer("Thermal shield, vertical", "thshield_vb", b.ThermalShieldVer, vbuild)
	vbuild -= b.ThermalShieldVer

	sink.Layer("Gap", "vgap_vv_thermalshield", b.VVThermalGapVer, vbuild)
	vbuild -= b.VVThermalGapVer

	sink.Layer("Vacuum vessel (and shielding)", "d_vv_top+shldtth", b.VVTop+b.ShieldTop, vbuild)
	vbuild -= b.VVTop + b.ShieldTop

	sink.Layer("Gap", "dr_shld_blkt_gap", b.BlanketGap, vbuild)
	vbuild -= b.BlanketGap

	sink.Layer("Top blanket", "blnktth", b.BlanketTop, vbuild)
	vbuild -= b.BlanketTop

	sink.Layer("Top first wall", "fwtth", fwTop, vbuild)
	vbuild -= fwTop

	sink.Layer("Top scrape-off", "vgaptop", b.VGapTop, vbuild)
	vbuild -= b.VGapTop

	sink.Layer("Plasma top", "rminor*kappa", halfPlasma, vbuild)
	vbuild -= halfPlasma

	sink.Layer("Midplane", "", 0.0, vbuild)

	vbuild -= halfPlasma
	sink.Layer("Plasma bottom", "rminor*kappa", halfPlasma, vbuild)

	vbuild -= b.VGapXPoint
	sink.Layer("Lower scrape-off", "vgap_xpoint_divertor", b.VGapXPoint, vbuild)

	vbuild -= p.Divertor.Structure
	sink.Layer("Divertor structure", "divfix", p.Divertor.Structure, vbuild)

	vbuild -= b.ShieldBottom
	vbuild -= b.VVBottom
	sink.Layer("Vacuum vessel (and shielding)", "d_vv_bot+shldlth", b.VVBottom+b.ShieldBottom, vbuild)

	vbuild -= b.VVThermalGapVer
	sink.Layer("Gap", "vgap_vv_thermalshield", b.VVThermalGapVer, vbuild)

	vbuild -= b.ThermalShieldVer
	sink.Layer("Thermal shield, vertical", "thshield_vb", b.ThermalShieldVer, vbuild)

	vbuild -= b.TFThermalGap
	sink.Layer("Gap", "dr_tf_shld_gap", b.TFThermalGap, vbuild)

	vbuild -= p.TF.InboardThickness
	sink.Layer("TF coil", "dr_tf_inboard", p.TF.InboardThickness, vbuild)

	tfHeight := tfTop - vbuild
	g.TFVerticalBore = tfHeight - 2.0*p.TF.InboardThickness

	vbuild -= p.Cryostat.RoofAllowance
	sink.Layer("Cryostat floor structure**", "dz_tf_cryostat", p.Cryostat.RoofAllowance, vbuild)

	g.TFOffset = (top + vbuild) / 2.0
}

// reportDivertor emits the divertor build and plasma position section.
func (s *Solver) reportDivertor(p *params.Machine, div divertor.Result, sink report.Sink) {
	sink.Header("Divertor build and plasma position")

	if div.Simplified {
		sink.Comment("Tight-aspect-ratio device: simplified divertor envelope")
		sink.Value("Calculated maximum divertor height (m)", "divht", div.Height)
		return
	}

	double := p.Plasma.Null == params.NullDouble
	if double {
		sink.Comment("Divertor Configuration = Double Null Divertor")
	} else {
		sink.Comment("Divertor Configuration = Single Null Divertor")
	}

	sink.Value("Plasma top position, radial (m)", "ptop_radial",
		p.Plasma.RMajor-p.Plasma.Triang*p.Plasma.RMinor)
	sink.Value("Plasma top position, vertical (m)", "ptop_vertical", p.Plasma.HalfHeight())
	sink.Value("Plasma geometric centre, radial (m)", "rmajor", p.Plasma.RMajor)
	sink.Value("Plasma geometric centre, vertical (m)", "0.0", 0.0)
	sink.Value("Plasma lower triangularity", "tril", p.Plasma.Triang)
	sink.Value("Plasma elongation", "kappa", p.Plasma.Kappa)
	sink.Value("TF coil vertical offset (m)", "tfoffset", p.Geometry.TFOffset)
	sink.Value("Plasma outer arc radius of curvature (m)", "rco", div.ArcRadiusOut)
	sink.Value("Plasma inner arc radius of curvature (m)", "rci", div.ArcRadiusIn)
	sink.Value("Plasma lower X-pt, radial (m)", "rxpt", div.XPoint.R)
	sink.Value("Plasma lower X-pt, vertical (m)", "zxpt", div.XPoint.Z)
	if double {
		sink.Value("Plasma upper X-pt, radial (m)", "rxpt", div.XPoint.R)
		sink.Value("Plasma upper X-pt, vertical (m)", "-zxpt", -div.XPoint.Z)
	}
	sink.Value("Angle between vertical and inner leg (rad)", "thetai", div.ThetaIn)
	sink.Value("Angle between vertical and outer leg (rad)", "thetao", div.ThetaOut)
	sink.Value("Angle between inner leg and plate (rad)", "betai", p.Divertor.PlateAngleIn)
	sink.Value("Angle between outer leg and plate (rad)", "betao", p.Divertor.PlateAngleOut)
	sink.Value("Inner divertor leg poloidal length (m)", "plsepi", p.Divertor.LegLengthIn)
	sink.Value("Outer divertor leg poloidal length (m)", "plsepo", p.Divertor.LegLengthOut)
	sink.Value("Inner divertor plate length (m)", "plleni", p.Divertor.PlateLengthIn)
	sink.Value("Outer divertor plate length (m)", "plleno", p.Divertor.PlateLengthOut)

	if double {
		// Upper divertor mirrors the lower across the midplane.
		sink.Value("Upper inner strike point, radial (m)", "rspi", div.StrikeIn.R)
		sink.Value("Upper inner strike point, vertical (m)", "-zspi", -div.StrikeIn.Z)
		sink.Value("Upper outer strike point, radial (m)", "rspo", div.StrikeOut.R)
		sink.Value("Upper outer strike point, vertical (m)", "-zspo", -div.StrikeOut.Z)
		sink.Value("Upper inner plate top, radial (m)", "rplti", div.PlateInTop.R)
		sink.Value("Upper inner plate top, vertical (m)", "-zplti", -div.PlateInTop.Z)
		sink.Value("Upper inner plate bottom, radial (m)", "rplbi", div.PlateInBottom.R)
		sink.Value("Upper inner plate bottom, vertical (m)", "-zplbi", -div.PlateInBottom.Z)
		sink.Value("Upper outer plate top, radial (m)", "rplto", div.PlateOutTop.R)
		sink.Value("Upper outer plate top, vertical (m)", "-zplto", -div.PlateOutTop.Z)
		sink.Value("Upper outer plate bottom, radial (m)", "rplbo", div.PlateOutBottom.R)
		sink.Value("Upper outer plate bottom, vertical (m)", "-zplbo", -div.PlateOutBottom.Z)
	}

	sink.Value("Inner strike point, radial (m)", "rspi", div.StrikeIn.R)
	sink.Value("Inner strike point, vertical (m)", "zspi", div.StrikeIn.Z)
	sink.Value("Inner plate top, radial (m)", "rplti", div.PlateInTop.R)
	sink.Value("Inner plate top, vertical (m)", "zplti", div.PlateInTop.Z)
	sink.Value("Inner plate bottom, radial (m)", "rplbi", div.PlateInBottom.R)
	sink.Value("Inner plate bottom, vertical (m)", "zplbi", div.PlateInBottom.Z)
	sink.Value("Outer strike point, radial (m)", "rspo", div.StrikeOut.R)
	sink.Value("Outer strike point, vertical (m)", "zspo", div.StrikeOut.Z)
	sink.Value("Outer plate top, radial (m)", "rplto", div.PlateOutTop.R)
	sink.Value("Outer plate top, vertical (m)", "zplto", div.PlateOutTop.Z)
	sink.Value("Outer plate bottom, radial (m)", "rplbo", div.PlateOutBottom.R)
	sink.Value("Outer plate bottom, vertical (m)", "zplbo", div.PlateOutBottom.Z)
	sink.Value("Calculated maximum divertor height (m)", "divht", div.Height)
}
