// Package params defines the device parameter record consumed and mutated by
// the build calculators.
//
// A Machine is a flat record of named engineering scalars, partitioned by
// subsystem for legibility. It is allocated once per run and mutated in
// place on every evaluation: the solvers read input fields and write solved
// geometry back into the same record. Nothing here is created or destroyed
// dynamically.
//
// Parameter files are TOML, one table per subsystem. Field keys follow the
// established systems-code symbol names (dr_bore, ripmax, ...) so that
// machine-readable output and legacy input files line up.
package params

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Enumerated Configuration Switches
// =============================================================================

// NullConfig selects the divertor null configuration.
type NullConfig int

const (
	// NullDouble has divertor structures at top and bottom.
	NullDouble NullConfig = 0
	// NullSingle has a divertor at the bottom only.
	NullSingle NullConfig = 1
)

// MagnetTech selects the TF coil conductor technology.
type MagnetTech int

const (
	TechResistive       MagnetTech = 0
	TechSuperconducting MagnetTech = 1
)

// WPGeometry selects the superconducting winding-pack cross-section.
type WPGeometry int

const (
	WPRectangle       WPGeometry = 0
	WPDoubleRectangle WPGeometry = 1
	WPTrapezoid       WPGeometry = 2
)

// CoilShape selects the TF coil outline.
type CoilShape int

const (
	// ShapeDee is the conventional shaped coil; ripple uses the fitted model.
	ShapeDee CoilShape = 1
	// ShapePicture is the picture-frame coil; ripple has a closed analytical
	// form with no applicability limits.
	ShapePicture CoilShape = 2
)

// TopRadiusMode selects how the centrepost top radius is fixed for
// tight-aspect-ratio resistive coils.
type TopRadiusMode int

const (
	// TopFromShape derives the top radius from the plasma shape and the
	// inboard shielding stack.
	TopFromShape TopRadiusMode = 0
	// TopUser takes the user value, floor-corrected to 1.01x the midplane
	// outer radius.
	TopUser TopRadiusMode = 1
	// TopFraction sets the top radius as a fraction of the midplane outer
	// radius.
	TopFraction TopRadiusMode = 2
)

// FWShape selects the first-wall cross-section model.
type FWShape int

const (
	// FWDee approximates the wall by a D-shaped two-arc shell.
	FWDee FWShape = 1
	// FWEllipse approximates the wall by two elliptical sections.
	FWEllipse FWShape = 2
)

// enum name tables; legacy integer spellings are accepted on input.
var (
	nullNames  = map[string]NullConfig{"double": NullDouble, "single": NullSingle, "0": NullDouble, "1": NullSingle}
	techNames  = map[string]MagnetTech{"resistive": TechResistive, "superconducting": TechSuperconducting, "0": TechResistive, "1": TechSuperconducting}
	wpNames    = map[string]WPGeometry{"rectangle": WPRectangle, "double-rectangle": WPDoubleRectangle, "trapezoid": WPTrapezoid, "0": WPRectangle, "1": WPDoubleRectangle, "2": WPTrapezoid}
	shapeNames = map[string]CoilShape{"dee": ShapeDee, "picture-frame": ShapePicture, "1": ShapeDee, "2": ShapePicture}
	topNames   = map[string]TopRadiusMode{"shape": TopFromShape, "user": TopUser, "fraction": TopFraction, "0": TopFromShape, "1": TopUser, "2": TopFraction}
	fwNames    = map[string]FWShape{"dee": FWDee, "ellipse": FWEllipse, "1": FWDee, "2": FWEllipse}
)

func unmarshalEnum[T ~int](dst *T, names map[string]T, kind string, text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	v, ok := names[s]
	if !ok {
		return fmt.Errorf("unknown %s %q", kind, s)
	}
	*dst = v
	return nil
}

func marshalEnum[T ~int](v T, names map[string]T) []byte {
	for name, val := range names {
		if val == v && len(name) > 1 {
			return []byte(name)
		}
	}
	return []byte(strconv.Itoa(int(v)))
}

func (n *NullConfig) UnmarshalText(b []byte) error {
	return unmarshalEnum(n, nullNames, "null configuration", b)
}
func (n NullConfig) MarshalText() ([]byte, error) { return marshalEnum(n, nullNames), nil }

func (t *MagnetTech) UnmarshalText(b []byte) error {
	return unmarshalEnum(t, techNames, "magnet technology", b)
}
func (t MagnetTech) MarshalText() ([]byte, error) { return marshalEnum(t, techNames), nil }

func (g *WPGeometry) UnmarshalText(b []byte) error {
	return unmarshalEnum(g, wpNames, "winding-pack geometry", b)
}
func (g WPGeometry) MarshalText() ([]byte, error) { return marshalEnum(g, wpNames), nil }

func (s *CoilShape) UnmarshalText(b []byte) error {
	return unmarshalEnum(s, shapeNames, "coil shape", b)
}
func (s CoilShape) MarshalText() ([]byte, error) { return marshalEnum(s, shapeNames), nil }

func (m *TopRadiusMode) UnmarshalText(b []byte) error {
	return unmarshalEnum(m, topNames, "top radius mode", b)
}
func (m TopRadiusMode) MarshalText() ([]byte, error) { return marshalEnum(m, topNames), nil }

func (s *FWShape) UnmarshalText(b []byte) error {
	return unmarshalEnum(s, fwNames, "first-wall shape", b)
}
func (s FWShape) MarshalText() ([]byte, error) { return marshalEnum(s, fwNames), nil }

// =============================================================================
// Subsystem Records
// =============================================================================

// Plasma holds the plasma shape parameters.
type Plasma struct {
	RMajor float64    `toml:"rmajor"` // major radius (m)
	RMinor float64    `toml:"rminor"` // minor radius (m)
	Kappa  float64    `toml:"kappa"`  // elongation
	Triang float64    `toml:"triang"` // triangularity
	Null   NullConfig `toml:"i_single_null"`
	Tight  bool       `toml:"itart"` // tight-aspect-ratio (spherical) device
}

// HalfHeight returns the plasma half-height rminor*kappa.
func (p Plasma) HalfHeight() float64 { return p.RMinor * p.Kappa }

// TFCoil holds the toroidal-field coil parameters.
type TFCoil struct {
	N                  float64       `toml:"n_tf"`     // number of TF coils
	Tech               MagnetTech    `toml:"i_tf_sup"` // conductor technology
	WPGeom             WPGeometry    `toml:"i_tf_wp_geom"`
	Shape              CoilShape     `toml:"i_tf_shape"`
	Bucking            int           `toml:"i_tf_bucking"`
	CaseNose           float64       `toml:"thkcas"` // external case nose thickness (m)
	CaseFront          float64       `toml:"casthi"` // plasma-side case thickness (m)
	Sidewall           float64       `toml:"casths"` // sidewall case thickness (m)
	SidewallIsFraction bool          `toml:"tfc_sidewall_is_fraction"`
	SidewallFraction   float64       `toml:"casths_fraction"`
	WPInsulation       float64       `toml:"tinstf"`    // ground insulation thickness (m)
	WPInsertionGap     float64       `toml:"tfinsgap"`  // winding pack insertion gap (m)
	WPThickness        float64       `toml:"dr_tf_wp"`  // winding pack radial thickness (m)
	WPFree             bool          `toml:"wp_is_free"` // solve dr_tf_inboard from dr_tf_wp
	InboardThickness   float64       `toml:"dr_tf_inboard"`
	FootprintRatio     float64       `toml:"tfootfi"` // outboard/inboard leg thickness ratio (resistive)
	OutboardWidth      float64       `toml:"tftort"`  // outboard leg toroidal width (m)
	MaxRipple          float64       `toml:"ripmax"`  // allowed edge ripple (%)
	TopMode            TopRadiusMode `toml:"i_r_cp_top"`
	TopRadius          float64       `toml:"r_cp_top"` // centrepost top radius (m); solved in shape mode
	TopAdjust          float64       `toml:"drtop"`    // centrepost top radius adjustment (m)
	TopFractionValue   float64       `toml:"f_r_cp"`   // top/midplane radius ratio

	// Solved per evaluation.
	OutboardThickness float64 `toml:"-"` // dr_tf_outboard
	Ripple            float64 `toml:"-"` // achieved edge ripple (%)
}

// Build holds the radial and vertical layer thicknesses.
type Build struct {
	Bore             float64 `toml:"dr_bore"` // machine bore (m)
	CSThickness      float64 `toml:"dr_cs"`
	CSTFGap          float64 `toml:"dr_cs_tf_gap"`
	CSHeightFraction float64 `toml:"ohhghf"` // CS height / TF internal height
	TFInsideCS       bool    `toml:"tf_in_cs"`

	Precomp          bool    `toml:"iprecomp"`
	PrecompForce     float64 `toml:"fseppc"`   // CS separation force (N)
	PrecompFraction  float64 `toml:"fcspc"`    // precompression structure fraction
	PrecompStress    float64 `toml:"sigallpc"` // allowable stress (Pa)
	PrecompThickness float64 `toml:"-"`        // dr_cs_precomp, solved

	TFThermalGap     float64 `toml:"dr_tf_shld_gap"`
	ThermalShieldIn  float64 `toml:"dr_shld_thermal_inboard"`
	ThermalShieldOut float64 `toml:"dr_shld_thermal_outboard"`
	ThermalShieldVer float64 `toml:"thshield_vb"`
	VVGapIn          float64 `toml:"dr_shld_vv_gap_inboard"`
	VVIn             float64 `toml:"dr_vv_inboard"`
	VVOut            float64 `toml:"dr_vv_outboard"`
	VVTop            float64 `toml:"d_vv_top"`
	VVBottom         float64 `toml:"d_vv_bot"`
	ShieldIn         float64 `toml:"dr_shld_inboard"`
	ShieldOut        float64 `toml:"dr_shld_outboard"`
	ShieldTop        float64 `toml:"shldtth"`
	ShieldBottom     float64 `toml:"shldlth"`
	BlanketGap       float64 `toml:"dr_shld_blkt_gap"`
	BlanketIn        float64 `toml:"dr_blkt_inboard"`
	BlanketOut       float64 `toml:"dr_blkt_outboard"`
	BlanketTop       float64 `toml:"-"` // blnktth, solved
	FirstWallIn      float64 `toml:"dr_fw_inboard"`
	FirstWallOut     float64 `toml:"dr_fw_outboard"`
	SOLIn            float64 `toml:"dr_fw_plasma_gap_inboard"`
	SOLOut           float64 `toml:"dr_fw_plasma_gap_outboard"`
	VGapTop          float64 `toml:"vgaptop"`
	VGapXPoint       float64 `toml:"vgap_xpoint_divertor"`
	VVThermalGapVer  float64 `toml:"vgap_vv_thermalshield"`
	OutboardGapMin   float64 `toml:"gapomin"`
	OutboardGap      float64 `toml:"-"` // gapsto, solved

	// Detailed blanket model: sub-layer thicknesses summed into
	// dr_blkt_inboard/outboard when BlanketModel > 0.
	BlanketModel      int     `toml:"blktmodel"`
	BlanketUnitIn     float64 `toml:"blbuith"`
	BlanketManifoldIn float64 `toml:"blbmith"`
	BlanketBackIn     float64 `toml:"blbpith"`
	BlanketUnitOut    float64 `toml:"blbuoth"`
	BlanketManifoldOut float64 `toml:"blbmoth"`
	BlanketBackOut    float64 `toml:"blbpoth"`

	FWModel     FWShape `toml:"fwbsshape"`
	DivCoverage float64 `toml:"fdiv"` // first-wall fraction taken by divertor
	HCDCoverage float64 `toml:"fhcd"` // first-wall fraction taken by H&CD ducts
}

// Divertor holds the divertor leg and plate geometry.
type Divertor struct {
	Structure     float64 `toml:"divfix"` // structure vertical thickness (m)
	PlateAngleIn  float64 `toml:"betai"`  // inner leg-to-plate angle (rad)
	PlateAngleOut float64 `toml:"betao"`  // outer leg-to-plate angle (rad)
	LegLengthIn   float64 `toml:"plsepi"` // inner leg poloidal length (m)
	LegLengthOut  float64 `toml:"plsepo"` // outer leg poloidal length (m)
	PlateLengthIn float64 `toml:"plleni"` // inner plate length (m)
	PlateLengthOut float64 `toml:"plleno"` // outer plate length (m)
}

// Cryostat holds the cryostat allowances.
type Cryostat struct {
	RoofAllowance float64 `toml:"dz_tf_cryostat"` // roof/floor structure allowance (m)
	Thickness     float64 `toml:"dr_cryostat"`
	Clearance     float64 `toml:"dr_pf_cryostat"` // clearance to outermost coil (m)
}

// Beam holds the neutral beam duct parameters used by the port-size
// calculation.
type Beam struct {
	Enabled          bool    `toml:"nbi"`
	TangencyFraction float64 `toml:"frbeam"`   // rtanbeam / rmajor
	Width            float64 `toml:"beamwd"`   // beam duct width (m)
	ShieldThickness  float64 `toml:"nbshield"` // duct shielding each side (m)

	TangencyRadius    float64 `toml:"-"` // rtanbeam, solved
	MaxTangencyRadius float64 `toml:"-"` // rtanmax, solved
}

// Geometry holds radii and heights solved by the build calculators. All
// fields are outputs; they are rewritten on every evaluation.
type Geometry struct {
	RTFInboardIn  float64 // r_tf_inboard_in
	RTFInboardMid float64 // r_tf_inboard_mid
	RTFInboardOut float64 // r_tf_inboard_out
	RCPTopRatio   float64 // f_r_cp, solved top/midplane ratio
	RVVInboardOut float64 // r_vv_inboard_out
	RShInboardIn  float64 // r_sh_inboard_in
	RShInboardOut float64 // r_sh_inboard_out
	RBuild        float64 // rbld, stack-up to plasma centre
	RShieldInner  float64 // rsldi
	RShieldOuter  float64 // rsldo
	RTFOutboardMid float64 // r_tf_outboard_mid
	TFRadialBore  float64 // dr_tf_inner_bore
	TFVerticalBore float64 // dh_tf_inner_bore
	TFOffset      float64 // TF coil / plasma vertical centring offset
	HMax          float64 // maximum half-height to inside of TF coil
	HPFUpper      float64 // hpfu, upper coil vertical position
	HPFDiff       float64 // hpfdif
	FWAreaIn      float64 // inboard first-wall area (m2)
	FWAreaOut     float64 // outboard first-wall area (m2)
	FWArea        float64 // total first-wall area (m2)
	RStrikeOut    float64 // rspo, outer strike point radius

	RCryostatIn    float64 // r_cryostat_inboard, internal radius
	ZCryostatHalf  float64 // z_cryostat_half_inside, internal half-height
	VolCryostat    float64 // cryostat structure volume (m3)
	VolCryostatInt float64 // cryostat internal volume (m3)
}

// =============================================================================
// Machine
// =============================================================================

// Machine is the full device parameter record. The zero value is not
// usable; start from Defaults or a loaded file.
type Machine struct {
	Plasma   Plasma   `toml:"plasma"`
	TF       TFCoil   `toml:"tf"`
	Build    Build    `toml:"build"`
	Divertor Divertor `toml:"divertor"`
	Cryostat Cryostat `toml:"cryostat"`
	Beam     Beam     `toml:"beam"`
	Geometry Geometry `toml:"-"`
}

// EdgeRadius returns rmajor + rminor, the outboard plasma edge radius.
func (m *Machine) EdgeRadius() float64 {
	return m.Plasma.RMajor + m.Plasma.RMinor
}
