package material

import "github.com/HJ-nkh/frameanalysis/internal/ferr"

// MasonryType is one row of the standard masonry parameter table
// ("standard murvaerk parametre"): unit strength, mortar strength,
// characteristic compressive strength, the EC6 partial factor, the
// Ritter eccentricity constant ke, a nominal E-modulus and density.
type MasonryType struct {
	Name     string
	FB       float64 // unit (block) compressive strength, Pa
	FM       float64 // mortar compressive strength, Pa
	FK       float64 // characteristic masonry compressive strength, Pa
	GammaC   float64 // EC6 partial factor
	CourseH  float64 // course height, m
	KeFactor float64 // Ritter eccentricity constant
	E0k      float64 // Pa, 0 where the original table has no value
	Density  float64 // kg/m^3
}

var masonryTypes = map[string]MasonryType{
	"Gammelt murværk":  {"Gammelt murværk", 15e6, 1.0e6, 2.4e6, 1.84, 0.066, 300, 355e6, 2000},
	"Standard murværk": {"Standard murværk", 15e6, 0.9e6, 3.55e6, 1.7, 0.066, 300, 0, 2000},
	"Stenklasse 20":    {"Stenklasse 20", 20e6, 4.5e6, 7.1e6, 1.7, 0.066, 400, 0, 2000},
	"Stenklasse 25":    {"Stenklasse 25", 25e6, 0.9e6, 8.7e6, 1.7, 0.066, 500, 0, 2000},
	"Stenklasse 30":    {"Stenklasse 30", 30e6, 0.9e6, 9.3e6, 1.7, 0.066, 600, 0, 2000},
	"Porebeton":        {"Porebeton", 4.5e6, 0.9e6, 3.4e6, 1.7, 0.2, 596, 2025e6, 600},
}

// GetMasonryType looks up a named masonry type from the standard table.
func GetMasonryType(name string) (MasonryType, error) {
	t, ok := masonryTypes[name]
	if !ok {
		return MasonryType{}, ferr.New(ferr.UnsupportedConfiguration, "masonry type %q not in standard table", name)
	}
	return t, nil
}
