package material

import (
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/ferr"
)

// SectionProps is the per-element constant section data GeometryBuilder
// needs to build an Element: elastic modulus, area, second moment of
// area (strong-axis bending) and material density.
type SectionProps struct {
	E, A, I, Rho float64
}

// Resolve derives the frame-element section properties for a member from
// its declared material descriptor, dispatching on MemberType the way
// spec.md §2 describes MaterialTables feeding GeometryBuilder.
func Resolve(props entities.MemberProps) (SectionProps, error) {
	switch props.Type {
	case entities.Steel:
		profile, err := GetSteelProfile(props.SteelProfile)
		if err != nil {
			return SectionProps{}, err
		}
		return SectionProps{E: SteelElasticity, A: profile.A, I: profile.Iy, Rho: SteelDensity}, nil

	case entities.Wood:
		if props.WoodSize == nil {
			return SectionProps{}, ferr.New(ferr.BadInput, "member %q: wood section requires woodSize", props.Name)
		}
		class, err := GetTimberClass(props.WoodType)
		if err != nil {
			return SectionProps{}, err
		}
		w := props.WoodSize.Width / 1000
		h := props.WoodSize.Height / 1000
		if w <= 0 || h <= 0 {
			return SectionProps{}, ferr.New(ferr.BadInput, "member %q: non-positive wood section dimensions", props.Name)
		}
		area := w * h
		inertia := w * h * h * h / 12
		return SectionProps{E: class.E0Mean, A: area, I: inertia, Rho: class.Rho}, nil

	case entities.Masonry:
		mtype, err := GetMasonryType(props.MurType)
		if err != nil {
			return SectionProps{}, err
		}
		t := props.MurThickness
		if t <= 0 {
			return SectionProps{}, ferr.New(ferr.BadInput, "member %q: masonry section requires murThickness", props.Name)
		}
		area := t * 1.0
		inertia := 1.0 * t * t * t / 12
		e := mtype.E0k
		if e <= 0 {
			e = 2000 * mtype.FK // crude fallback when the table carries no E0k (e.g. "Standard murværk")
		}
		return SectionProps{E: e, A: area, I: inertia, Rho: mtype.Density}, nil

	default:
		return SectionProps{}, ferr.New(ferr.BadInput, "unknown member type %q", props.Type)
	}
}
