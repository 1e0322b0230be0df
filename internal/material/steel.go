package material

import (
	"strings"

	"github.com/HJ-nkh/frameanalysis/internal/ferr"
)

// SteelProfileFamily is the cross-section family, driving which shear-area
// and buckling-curve formula applies in the EC3 checker.
type SteelProfileFamily string

const (
	FamilyIOrH  SteelProfileFamily = "IorH" // IPE, HE
	FamilyUN    SteelProfileFamily = "UN"
	FamilyRH    SteelProfileFamily = "RH"
	FamilyOther SteelProfileFamily = "Other"
)

// SteelProfile is one row of the section property table.
type SteelProfile struct {
	Name   string
	Family SteelProfileFamily
	H      float64 // overall height, m
	B      float64 // flange width, m
	T      float64 // flange thickness, m
	D      float64 // web thickness, m
	R      float64 // root radius, m
	A      float64 // area, m^2
	Iy     float64 // m^4
	Iz     float64 // m^4
	Iw     float64 // warping constant, m^6
	WPl    float64 // plastic section modulus about y, m^3
	WEly   float64 // elastic section modulus about y, m^3
	G      float64 // self-weight, N/m
}

// steelProfiles is a representative catalog spanning every profile family
// the EC3 checker branches on (IPE/HE, UNP, RHS); values taken from
// standard European rolled-section tables.
var steelProfiles = map[string]SteelProfile{
	"IPE200": {Name: "IPE200", Family: FamilyIOrH, H: 0.200, B: 0.100, T: 0.0085, D: 0.0056, R: 0.012,
		A: 28.5e-4, Iy: 1943e-8, Iz: 142.4e-8, Iw: 12990e-12, WPl: 220.6e-6, WEly: 194.3e-6, G: 223.5},
	"IPE300": {Name: "IPE300", Family: FamilyIOrH, H: 0.300, B: 0.150, T: 0.0107, D: 0.0071, R: 0.015,
		A: 53.8e-4, Iy: 8356e-8, Iz: 603.8e-8, Iw: 125900e-12, WPl: 628.4e-6, WEly: 557.1e-6, G: 422.3},
	"IPE400": {Name: "IPE400", Family: FamilyIOrH, H: 0.400, B: 0.180, T: 0.0135, D: 0.0086, R: 0.021,
		A: 84.5e-4, Iy: 23130e-8, Iz: 1318e-8, Iw: 490000e-12, WPl: 1307e-6, WEly: 1156e-6, G: 663.0},
	"HE140B": {Name: "HE140B", Family: FamilyIOrH, H: 0.140, B: 0.140, T: 0.012, D: 0.007, R: 0.012,
		A: 43.0e-4, Iy: 1509e-8, Iz: 550e-8, Iw: 9460e-12, WPl: 245e-6, WEly: 216e-6, G: 337.0},
	"HE200B": {Name: "HE200B", Family: FamilyIOrH, H: 0.200, B: 0.200, T: 0.015, D: 0.009, R: 0.018,
		A: 78.1e-4, Iy: 5696e-8, Iz: 2003e-8, Iw: 171000e-12, WPl: 642.5e-6, WEly: 569.6e-6, G: 613.0},
	"HE280B": {Name: "HE280B", Family: FamilyIOrH, H: 0.280, B: 0.280, T: 0.018, D: 0.0105, R: 0.024,
		A: 131.4e-4, Iy: 19270e-8, Iz: 6595e-8, Iw: 1130000e-12, WPl: 1534e-6, WEly: 1376e-6, G: 1031.0},
	"UNP200": {Name: "UNP200", Family: FamilyUN, H: 0.200, B: 0.075, T: 0.0115, D: 0.0085, R: 0.011,
		A: 32.2e-4, Iy: 1910e-8, Iz: 148e-8, Iw: 2950e-12, WPl: 234e-6, WEly: 191e-6, G: 252.0},
	"RHS150x100x8": {Name: "RHS150x100x8", Family: FamilyRH, H: 0.150, B: 0.100, T: 0.008, D: 0.008, R: 0.016,
		A: 36.6e-4, Iy: 1050e-8, Iz: 570e-8, Iw: 0, WPl: 173e-6, WEly: 140e-6, G: 287.0},
}

// GetSteelProfile looks up a section by name.
func GetSteelProfile(name string) (SteelProfile, error) {
	p, ok := steelProfiles[name]
	if !ok {
		return SteelProfile{}, ferr.New(ferr.UnsupportedConfiguration, "steel profile %q not in section table", name)
	}
	return p, nil
}

// ClassifyFamily infers the profile family from its name prefix, the way
// the original checker branches on substring membership ("IP", "HE",
// "UN", "RH").
func ClassifyFamily(profile string) SteelProfileFamily {
	switch {
	case strings.Contains(profile, "IPE"), strings.Contains(profile, "HE"):
		return FamilyIOrH
	case strings.Contains(profile, "UN"):
		return FamilyUN
	case strings.Contains(profile, "RH"):
		return FamilyRH
	default:
		return FamilyOther
	}
}

const (
	SteelElasticity   = 210e9 // Pa
	SteelShearModulus = 81e9  // Pa
	SteelDensity      = 7850  // kg/m^3
	SteelPoisson      = 0.3
	GravityAccel      = -9.82 // m/s^2, matches Frame_FEM.py's self-weight convention
)

// SteelGammaM returns a steel partial factor by name.
func SteelGammaM(name string) (float64, error) {
	table := map[string]float64{
		"gamma_M0": 1.1,
		"gamma_M1": 1.2,
		"gamma_M2": 1.35,
	}
	v, ok := table[name]
	if !ok {
		return 0, ferr.New(ferr.UnsupportedConfiguration, "unknown steel partial factor %q", name)
	}
	return v, nil
}

// yieldStrengthBand is one (t_max, MPa) pair of the EN 10025-2/3 table.
type yieldStrengthBand struct {
	tMax float64 // m
	mpa  map[string]float64
}

var yieldStrengthTable = []yieldStrengthBand{
	{0.016, map[string]float64{"S235": 235, "S275": 275, "S355": 355, "S420": 420, "S460": 460}},
	{0.040, map[string]float64{"S235": 225, "S275": 265, "S355": 345, "S420": 400, "S460": 440}},
	{0.063, map[string]float64{"S235": 215, "S275": 255, "S355": 335, "S420": 390, "S460": 410}},
	{0.080, map[string]float64{"S235": 215, "S275": 245, "S355": 325, "S420": 390, "S460": 410}},
	{0.100, map[string]float64{"S235": 215, "S275": 235, "S355": 315, "S460": 400}},
}

// YieldStrength returns f_y in Pa for a grade at a given thickness in
// meters, selecting the thickness band per EN 10025-2.
func YieldStrength(grade string, thickness float64) (float64, error) {
	for _, band := range yieldStrengthTable {
		if thickness <= band.tMax {
			mpa, ok := band.mpa[grade]
			if !ok {
				return 0, ferr.New(ferr.UnsupportedConfiguration, "steel grade %q not defined for thickness %.4fm", grade, thickness)
			}
			return mpa * 1e6, nil
		}
	}
	return 0, ferr.New(ferr.UnsupportedConfiguration, "steel thickness %.4fm exceeds yield-strength table range", thickness)
}

// SteelFireKy is EN 1993-1-2 Table 3.1: the reduction factor for the
// effective yield strength of steel at elevated temperature. Linearly
// interpolated between the tabulated 100 deg C steps by KyAt.
var SteelFireKy = []struct {
	ThetaC float64
	Ky     float64
}{
	{20, 1.000}, {100, 1.000}, {200, 1.000}, {300, 1.000}, {400, 1.000},
	{500, 0.780}, {600, 0.470}, {700, 0.230}, {800, 0.110}, {900, 0.060},
	{1000, 0.040}, {1100, 0.020}, {1200, 0.000},
}

// KyAt linearly interpolates the yield-strength reduction factor at the
// given steel temperature in degrees Celsius.
func KyAt(thetaC float64) float64 {
	tbl := SteelFireKy
	if thetaC <= tbl[0].ThetaC {
		return tbl[0].Ky
	}
	if thetaC >= tbl[len(tbl)-1].ThetaC {
		return tbl[len(tbl)-1].Ky
	}
	for i := 1; i < len(tbl); i++ {
		if thetaC <= tbl[i].ThetaC {
			lo, hi := tbl[i-1], tbl[i]
			frac := (thetaC - lo.ThetaC) / (hi.ThetaC - lo.ThetaC)
			return lo.Ky + frac*(hi.Ky-lo.Ky)
		}
	}
	return tbl[len(tbl)-1].Ky
}

// CriticalTemperature inverts KyAt: the temperature at which k_y equals
// the given target ratio, found by scanning the tabulated steps and
// interpolating within the bracketing interval. Used by the EC3 ALS pass
// to report a critical steel temperature from a governing UR (§4.6).
func CriticalTemperature(kyTarget float64) float64 {
	tbl := SteelFireKy
	if kyTarget >= tbl[0].Ky {
		return tbl[0].ThetaC
	}
	if kyTarget <= tbl[len(tbl)-1].Ky {
		return tbl[len(tbl)-1].ThetaC
	}
	for i := 1; i < len(tbl); i++ {
		if kyTarget >= tbl[i].Ky {
			lo, hi := tbl[i-1], tbl[i]
			frac := (lo.Ky - kyTarget) / (lo.Ky - hi.Ky)
			return lo.ThetaC + frac*(hi.ThetaC-lo.ThetaC)
		}
	}
	return tbl[len(tbl)-1].ThetaC
}
