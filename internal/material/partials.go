package material

import "github.com/HJ-nkh/frameanalysis/internal/ferr"

// Eurocode ULS partial factors for the permanent and leading variable
// action, per EN 1990 eq. 6.10a/6.10b.
const (
	GammaGjSup610a = 1.2
	GammaGjInf610a = 1.0
	GammaGjSup610b = 1.0
	GammaGjInf610b = 0.9
	GammaQ1        = 1.5
	GammaGjSupALS  = 1.0
)

// KFi is the EN 1990 Annex B consequence-class factor applied to every
// variable action (leading and accompanying) and to the unfavourable
// Egenlast term in 6.10a/6.10b.
func KFi(cc string) (float64, error) {
	switch cc {
	case "CC1":
		return 0.9, nil
	case "CC2":
		return 1.0, nil
	case "CC3":
		return 1.1, nil
	default:
		return 0, ferr.New(ferr.UnsupportedConfiguration, "unknown consequence class %q", cc)
	}
}

// LoadCategory is the combination-factor vocabulary used internally by
// the combination engine, one step removed from entities.LoadType: it
// distinguishes the dominant-snow-under-wind special case and carries
// Egenlast/Temperaturlast, which are never user-declared load types.
type LoadCategory string

const (
	CatEgenlast      LoadCategory = "Egenlast"
	CatNyttelast     LoadCategory = "Nyttelast"
	CatSnelast       LoadCategory = "Snelast"
	CatSnelastDomVind LoadCategory = "Snelast, dom vind"
	CatVindlast      LoadCategory = "Vindlast"
	CatTemperaturlast LoadCategory = "Temperaturlast"
	CatStandard      LoadCategory = "Standard"
)

var psi0Table = map[LoadCategory]float64{
	CatNyttelast:      0.5,
	CatSnelast:        0.3,
	CatSnelastDomVind: 0,
	CatVindlast:       0.3,
	CatTemperaturlast: 0.6,
	CatStandard:       1.0,
}

var psi1Table = map[LoadCategory]float64{
	CatNyttelast:      0.3,
	CatSnelast:        0.2,
	CatSnelastDomVind: 0,
	CatVindlast:       0.2,
	CatTemperaturlast: 0.5,
	CatStandard:       1.0,
}

var psi2Table = map[LoadCategory]float64{
	CatNyttelast:      0.2,
	CatSnelast:        0,
	CatSnelastDomVind: 0,
	CatVindlast:       0,
	CatTemperaturlast: 0,
	CatStandard:       1.0,
}

// Psi0, Psi1, Psi2 return the EN 1990 Table A1.1 combination factors for
// a load category. CatStandard (the boundary's conservative catch-all
// LoadType) is fixed at 1.0 for all three.
func Psi0(cat LoadCategory) (float64, error) { return psiLookup(psi0Table, cat) }
func Psi1(cat LoadCategory) (float64, error) { return psiLookup(psi1Table, cat) }
func Psi2(cat LoadCategory) (float64, error) { return psiLookup(psi2Table, cat) }

func psiLookup(table map[LoadCategory]float64, cat LoadCategory) (float64, error) {
	v, ok := table[cat]
	if !ok {
		return 0, ferr.New(ferr.UnsupportedConfiguration, "no combination factor for load category %q", cat)
	}
	return v, nil
}

// AlphaN is the EN 1990 §6.3.1.2(10) reduction factor for imposed load
// from n storeys (the nLevelsAbove setting), multiplying the dominant
// Nyttelast factor in the 6.10b rows. For n <= 1 the factor is 1.
func AlphaN(n int, psi0Dom float64) float64 {
	if n <= 1 {
		return 1
	}
	return (1 + float64(n-1)*psi0Dom) / float64(n)
}
