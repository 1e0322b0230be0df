package material

import (
	"math"
	"strings"

	"github.com/HJ-nkh/frameanalysis/internal/ferr"
)

// TimberStrengthClass is one row of EN 338 (solid) / EN 14080 (glulam)
// characteristic strength properties.
type TimberStrengthClass struct {
	Name   string
	FMk    float64 // bending, Pa
	FT0k   float64 // tension parallel, Pa
	FT90k  float64
	FC0k   float64 // compression parallel, Pa
	FC90k  float64
	FVk    float64 // shear, Pa
	E0Mean float64 // Pa
	E005   float64 // Pa
	GMean  float64 // Pa
	Rho    float64 // kg/m^3, mean density
}

var timberClasses = map[string]TimberStrengthClass{
	"C14": {"C14", 14e6, 8e6, 0.4e6, 16e6, 2.0e6, 3.0e6, 7.0e9, 4.7e9, 0.44e9, 350},
	"C16": {"C16", 16e6, 10e6, 0.4e6, 17e6, 2.2e6, 3.2e6, 8.0e9, 5.4e9, 0.50e9, 370},
	"C18": {"C18", 18e6, 11e6, 0.4e6, 18e6, 2.2e6, 3.4e6, 9.0e9, 6.0e9, 0.56e9, 380},
	"C20": {"C20", 20e6, 12e6, 0.4e6, 19e6, 2.3e6, 3.6e6, 9.5e9, 6.4e9, 0.59e9, 390},
	"C22": {"C22", 22e6, 13e6, 0.4e6, 20e6, 2.4e6, 3.8e6, 10.0e9, 6.7e9, 0.63e9, 410},
	"C24": {"C24", 24e6, 14e6, 0.4e6, 21e6, 2.5e6, 4.0e6, 11.0e9, 7.4e9, 0.69e9, 420},
	"C27": {"C27", 27e6, 16e6, 0.4e6, 22e6, 2.6e6, 4.0e6, 11.5e9, 7.7e9, 0.72e9, 450},
	"C30": {"C30", 30e6, 18e6, 0.4e6, 23e6, 2.7e6, 4.0e6, 12.0e9, 8.0e9, 0.75e9, 460},
	"GL24h": {"GL24h", 24e6, 16.5e6, 0.4e6, 24e6, 2.7e6, 2.7e6, 11.6e9, 9.4e9, 0.72e9, 380},
	"GL28h": {"GL28h", 28e6, 19.5e6, 0.45e6, 26.5e6, 3.0e6, 3.2e6, 12.6e9, 10.2e9, 0.78e9, 410},
	"GL32h": {"GL32h", 32e6, 22.5e6, 0.5e6, 29e6, 3.3e6, 3.8e6, 13.7e9, 11.1e9, 0.85e9, 430},
}

// GetTimberClass looks up a strength class by name.
func GetTimberClass(name string) (TimberStrengthClass, error) {
	c, ok := timberClasses[name]
	if !ok {
		return TimberStrengthClass{}, ferr.New(ferr.UnsupportedConfiguration, "timber strength class %q not in table", name)
	}
	return c, nil
}

// IsGlulam reports whether a strength class name denotes glulam (GLxx)
// as opposed to solid sawn timber (Cxx/Txx), the same substring test the
// original checker uses throughout.
func IsGlulam(class string) bool {
	return strings.HasPrefix(class, "GL")
}

// ServiceClass is the EN 1995-1-1 §2.3.1.3 moisture/service environment.
type ServiceClass int

const (
	ServiceClass1 ServiceClass = 1
	ServiceClass2 ServiceClass = 2
	ServiceClass3 ServiceClass = 3
)

// LoadDurationClass is the EC5 Table 2.1 action-duration category. The
// core fixes "Medium term" throughout per spec.md's documented
// simplification.
type LoadDurationClass string

const (
	DurationPermanent     LoadDurationClass = "Permanent"
	DurationLongTerm      LoadDurationClass = "LongTerm"
	DurationMediumTerm    LoadDurationClass = "MediumTerm"
	DurationShortTerm     LoadDurationClass = "ShortTerm"
	DurationInstantaneous LoadDurationClass = "Instantaneous"
)

// KMod is EC5 Table 3.1 for solid timber/glulam under service class sc
// and load duration dur.
func KMod(sc ServiceClass, dur LoadDurationClass) (float64, error) {
	table := map[ServiceClass]map[LoadDurationClass]float64{
		ServiceClass1: {DurationPermanent: 0.6, DurationLongTerm: 0.7, DurationMediumTerm: 0.8, DurationShortTerm: 0.9, DurationInstantaneous: 1.1},
		ServiceClass2: {DurationPermanent: 0.6, DurationLongTerm: 0.7, DurationMediumTerm: 0.8, DurationShortTerm: 0.9, DurationInstantaneous: 1.1},
		ServiceClass3: {DurationPermanent: 0.5, DurationLongTerm: 0.55, DurationMediumTerm: 0.65, DurationShortTerm: 0.7, DurationInstantaneous: 0.9},
	}
	sub, ok := table[sc]
	if !ok {
		return 0, ferr.New(ferr.UnsupportedConfiguration, "unsupported timber service class %d", sc)
	}
	v, ok := sub[dur]
	if !ok {
		return 0, ferr.New(ferr.UnsupportedConfiguration, "unsupported load duration class %q", dur)
	}
	return v, nil
}

// KDef is EC5 Table 3.2.
func KDef(sc ServiceClass) (float64, error) {
	table := map[ServiceClass]float64{ServiceClass1: 0.6, ServiceClass2: 0.8, ServiceClass3: 2.0}
	v, ok := table[sc]
	if !ok {
		return 0, ferr.New(ferr.UnsupportedConfiguration, "unsupported timber service class %d", sc)
	}
	return v, nil
}

// GammaMTimber is EC5 Table 2.3 / DK NA partial factor for the material
// state. Solid timber with individual grade stamp is the case spec.md
// fixes throughout.
const GammaMTimberSolid = 1.35
const GammaMTimberGlulam = 1.30

// KM is the redistribution factor of EC5 §6.1.6(2) for rectangular
// cross-sections of solid timber, glulam or LVL.
const KM = 0.7

// KH is EC5 §3.2(3) (solid) / §3.3(3) (glulam) size-effect factor, as a
// function of the relevant section dimension h or b, in meters.
func KH(dim float64, glulam bool) float64 {
	dimMM := dim * 1000
	if glulam {
		if dimMM < 600 {
			kh := math.Pow(600/dimMM, 0.1)
			if kh > 1.1 {
				return 1.1
			}
			return kh
		}
		return 1.0
	}
	if dimMM < 150 {
		kh := math.Pow(150/dimMM, 0.2)
		if kh > 1.3 {
			return 1.3
		}
		return kh
	}
	return 1.0
}

// ImperfectionFactorBetaC is EC5 §6.3.2 Table for the column stability
// check, keyed by material family.
func ImperfectionFactorBetaC(glulam bool) float64 {
	if glulam {
		return 0.1
	}
	return 0.2
}
