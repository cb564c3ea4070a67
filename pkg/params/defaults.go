package params

// Defaults returns a self-consistent conventional-tokamak baseline: an
// 8 m / 2.5 m single-null superconducting device with 16 TF coils. It is
// the starting point for loaded parameter files and the reference case for
// the regression tests.
func Defaults() *Machine {
	return &Machine{
		Plasma: Plasma{
			RMajor: 8.0,
			RMinor: 2.5,
			Kappa:  1.7,
			Triang: 0.4,
			Null:   NullSingle,
		},
		TF: TFCoil{
			N:                16,
			Tech:             TechSuperconducting,
			WPGeom:           WPRectangle,
			Shape:            ShapeDee,
			CaseNose:         0.52,
			CaseFront:        0.06,
			Sidewall:         0.05,
			SidewallFraction: 0.03,
			WPInsulation:     0.018,
			WPInsertionGap:   0.01,
			InboardThickness: 1.25,
			FootprintRatio:   1.19,
			OutboardWidth:    1.65,
			MaxRipple:        0.6,
			TopMode:          TopFromShape,
			TopFractionValue: 1.4,
		},
		Build: Build{
			Bore:             1.90,
			CSThickness:      0.55,
			CSTFGap:          0.05,
			CSHeightFraction: 0.9,
			PrecompForce:     3.5e8,
			PrecompFraction:  0.664,
			PrecompStress:    3.0e8,
			TFThermalGap:     0.05,
			ThermalShieldIn:  0.05,
			ThermalShieldOut: 0.05,
			ThermalShieldVer: 0.05,
			VVGapIn:          0.02,
			VVIn:             0.30,
			VVOut:            0.30,
			VVTop:            0.30,
			VVBottom:         0.30,
			ShieldIn:         0.40,
			ShieldOut:        0.80,
			ShieldTop:        0.60,
			ShieldBottom:     0.70,
			BlanketGap:       0.02,
			BlanketIn:        0.70,
			BlanketOut:       1.00,
			FirstWallIn:      0.010,
			FirstWallOut:     0.010,
			SOLIn:            0.200,
			SOLOut:           0.225,
			VGapTop:          0.60,
			VGapXPoint:       1.60,
			VVThermalGapVer:  0.05,
			OutboardGapMin:   0.21,
			FWModel:          FWEllipse,
			DivCoverage:      0.115,
			HCDCoverage:      0.0,
		},
		Divertor: Divertor{
			Structure:      0.62,
			PlateAngleIn:   1.0,
			PlateAngleOut:  1.0,
			LegLengthIn:    1.0,
			LegLengthOut:   1.5,
			PlateLengthIn:  1.0,
			PlateLengthOut: 1.0,
		},
		Cryostat: Cryostat{
			RoofAllowance: 2.5,
			Thickness:     0.15,
			Clearance:     0.5,
		},
		Beam: Beam{
			Enabled:          true,
			TangencyFraction: 1.05,
			Width:            0.58,
			ShieldThickness:  0.50,
		},
	}
}
