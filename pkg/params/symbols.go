package params

// FieldBySymbol resolves an input symbol name to the float field holding it,
// for callers that perturb parameters programmatically. Only continuous
// input parameters are resolvable; switches and solved outputs are not.
func (m *Machine) FieldBySymbol(symbol string) (*float64, bool) {
	switch symbol {
	case "rmajor":
		return &m.Plasma.RMajor, true
	case "rminor":
		return &m.Plasma.RMinor, true
	case "kappa":
		return &m.Plasma.Kappa, true
	case "triang":
		return &m.Plasma.Triang, true
	case "n_tf":
		return &m.TF.N, true
	case "thkcas":
		return &m.TF.CaseNose, true
	case "casthi":
		return &m.TF.CaseFront, true
	case "casths":
		return &m.TF.Sidewall, true
	case "tinstf":
		return &m.TF.WPInsulation, true
	case "tfinsgap":
		return &m.TF.WPInsertionGap, true
	case "dr_tf_wp":
		return &m.TF.WPThickness, true
	case "dr_tf_inboard":
		return &m.TF.InboardThickness, true
	case "tfootfi":
		return &m.TF.FootprintRatio, true
	case "tftort":
		return &m.TF.OutboardWidth, true
	case "ripmax":
		return &m.TF.MaxRipple, true
	case "dr_bore":
		return &m.Build.Bore, true
	case "dr_cs":
		return &m.Build.CSThickness, true
	case "dr_cs_tf_gap":
		return &m.Build.CSTFGap, true
	case "fseppc":
		return &m.Build.PrecompForce, true
	case "fcspc":
		return &m.Build.PrecompFraction, true
	case "sigallpc":
		return &m.Build.PrecompStress, true
	case "dr_tf_shld_gap":
		return &m.Build.TFThermalGap, true
	case "dr_shld_thermal_inboard":
		return &m.Build.ThermalShieldIn, true
	case "dr_shld_thermal_outboard":
		return &m.Build.ThermalShieldOut, true
	case "thshield_vb":
		return &m.Build.ThermalShieldVer, true
	case "dr_shld_vv_gap_inboard":
		return &m.Build.VVGapIn, true
	case "dr_vv_inboard":
		return &m.Build.VVIn, true
	case "dr_vv_outboard":
		return &m.Build.VVOut, true
	case "d_vv_top":
		return &m.Build.VVTop, true
	case "d_vv_bot":
		return &m.Build.VVBottom, true
	case "dr_shld_inboard":
		return &m.Build.ShieldIn, true
	case "dr_shld_outboard":
		return &m.Build.ShieldOut, true
	case "shldtth":
		return &m.Build.ShieldTop, true
	case "shldlth":
		return &m.Build.ShieldBottom, true
	case "dr_shld_blkt_gap":
		return &m.Build.BlanketGap, true
	case "dr_blkt_inboard":
		return &m.Build.BlanketIn, true
	case "dr_blkt_outboard":
		return &m.Build.BlanketOut, true
	case "dr_fw_inboard":
		return &m.Build.FirstWallIn, true
	case "dr_fw_outboard":
		return &m.Build.FirstWallOut, true
	case "dr_fw_plasma_gap_inboard":
		return &m.Build.SOLIn, true
	case "dr_fw_plasma_gap_outboard":
		return &m.Build.SOLOut, true
	case "vgaptop":
		return &m.Build.VGapTop, true
	case "vgap_xpoint_divertor":
		return &m.Build.VGapXPoint, true
	case "vgap_vv_thermalshield":
		return &m.Build.VVThermalGapVer, true
	case "gapomin":
		return &m.Build.OutboardGapMin, true
	case "fdiv":
		return &m.Build.DivCoverage, true
	case "fhcd":
		return &m.Build.HCDCoverage, true
	case "divfix":
		return &m.Divertor.Structure, true
	case "plsepi":
		return &m.Divertor.LegLengthIn, true
	case "plsepo":
		return &m.Divertor.LegLengthOut, true
	case "plleni":
		return &m.Divertor.PlateLengthIn, true
	case "plleno":
		return &m.Divertor.PlateLengthOut, true
	case "betai":
		return &m.Divertor.PlateAngleIn, true
	case "betao":
		return &m.Divertor.PlateAngleOut, true
	case "dz_tf_cryostat":
		return &m.Cryostat.RoofAllowance, true
	case "dr_cryostat":
		return &m.Cryostat.Thickness, true
	case "frbeam":
		return &m.Beam.TangencyFraction, true
	case "beamwd":
		return &m.Beam.Width, true
	case "nbshield":
		return &m.Beam.ShieldThickness, true
	}
	return nil, false
}
