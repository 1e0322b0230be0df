// Package ec6 evaluates the EC6 masonry member checks of spec.md §4.8:
// the Ritter N-M interaction check for wall bending/compression and the
// concentrated-load bearing check.
package ec6

import (
	"math"

	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/ferr"
	"github.com/HJ-nkh/frameanalysis/internal/material"
)

const (
	ritterCurvePoints = 26
	slendernessMax    = 27.0

	// concentratedBearingLength is the nominal bearing length assumed for
	// a point load with no declared plate geometry, matching the fixed
	// bearing convention used by the EC3 crippling check.
	concentratedBearingLength = 0.100
	concentratedBeta          = 1.5
)

// Inputs is the per-member resolved masonry data every rule reads.
type Inputs struct {
	Type      material.MasonryType
	Thickness float64 // m
	WallHeight float64 // m
	Length    float64 // m, in-plane wall length (always a 1.0 m strip)
}

// Prepare resolves the masonry type table and wall geometry for one
// member.
func Prepare(props entities.MemberProps) (Inputs, error) {
	mtype, err := material.GetMasonryType(props.MurType)
	if err != nil {
		return Inputs{}, err
	}
	if props.MurThickness <= 0 || props.MurWallHeight <= 0 {
		return Inputs{}, ferr.New(ferr.BadInput, "masonry member %q is missing thickness/wall height", props.Name)
	}
	return Inputs{
		Type:       mtype,
		Thickness:  props.MurThickness,
		WallHeight: props.MurWallHeight,
		Length:     1.0,
	}, nil
}

// KtFactor is the joint-shear factor of the effective-height calculation.
func KtFactor(thickness float64) float64 {
	if thickness <= 0.090 {
		return 0.7
	}
	return 0.9
}

// EffectiveHeight applies the p-factor of EN 1996-1-1 §5.5.1.2, fixed to
// the unrestrained (no stabilising cross-wall) case since the declared
// schema carries no adjoining-wall geometry: p = 1, h_ef = h.
func EffectiveHeight(in Inputs) (hef, lambda float64) {
	hef = in.WallHeight
	lambda = hef / in.Thickness
	return hef, lambda
}

// ritterCurve builds the tabulated k_s*k_t*f_k*b_c interaction curve of
// the original checker's linjelastVaegRitter, sampled at 26 eccentricities
// spanning t/2 down to 0.
func ritterCurve(in Inputs, hef float64) (nrd, mrd []float64) {
	fd := in.Type.FK / in.Type.GammaC
	kt := KtFactor(in.Thickness)

	nrd = make([]float64, ritterCurvePoints)
	mrd = make([]float64, ritterCurvePoints)
	bc := make([]float64, ritterCurvePoints)

	for i := 0; i < ritterCurvePoints; i++ {
		et := in.Thickness / 2 * (1 - float64(i)/float64(ritterCurvePoints-1))
		bc[i] = in.Thickness - 2*et
	}
	for j := 1; j < ritterCurvePoints; j++ {
		ac := in.Length * bc[j]
		ic := in.Length / 12 * bc[j] * bc[j] * bc[j]
		icGyration := math.Sqrt(ic / ac)
		ks := 1 / (1 + 1/(in.Type.KeFactor*math.Pi*math.Pi)*(hef/icGyration)*(hef/icGyration))
		nrd[j] = ks * kt * fd * bc[j]
		mrd[j] = nrd[j] * (in.Thickness/2 - bc[j]/2)
	}
	return nrd, mrd
}

// mRdAt piecewise-linearly interpolates the bending capacity for a given
// axial compression, walking the tabulated nrd/mrd curve.
func mRdAt(n float64, nrd, mrd []float64) float64 {
	for i := 0; i < len(nrd)-1; i++ {
		if n >= nrd[i] && n <= nrd[i+1] {
			a := (mrd[i+1] - mrd[i]) / (nrd[i+1] - nrd[i])
			b := mrd[i] - a*nrd[i]
			return a*n + b
		}
	}
	return mrd[len(mrd)-1]
}

// Ritter evaluates the N-M interaction check: UR = M_Ed / M_Rd(N_Ed),
// taking N_Ed/M_Ed directly from the member's FE-resolved section forces
// (the solver already accounts for self-weight and any lateral line
// loads on the wall, so the original's separate hand-calc eccentricity
// integration is not re-derived here). Declared top/bottom load
// eccentricities (e0, e5) are not consumed: they feed the original's
// own eccentricity build-up, which this FE-driven variant replaces with
// M_Ed taken straight from the solved member forces.
func Ritter(in Inputs, n, m []float64) (ur, nEd, mEd, mRd float64, err error) {
	hef, lambda := EffectiveHeight(in)
	if lambda > slendernessMax {
		return 0, 0, 0, 0, ferr.New(ferr.UnsupportedConfiguration, "wall slenderness %.1f exceeds the Ritter method's limit of %.0f", lambda, slendernessMax)
	}

	minN := 0.0
	for _, x := range n {
		if x < minN {
			minN = x
		}
	}
	nEd = -minN
	mEd = 0
	for _, x := range m {
		if math.Abs(x) > mEd {
			mEd = math.Abs(x)
		}
	}

	nrd, mrd := ritterCurve(in, hef)
	mRd = mRdAt(nEd, nrd, mrd)
	if mRd <= 0 {
		return 0, nEd, mEd, mRd, ferr.New(ferr.NumericalIssue, "Ritter interaction curve returned non-positive capacity")
	}
	return mEd / mRd, nEd, mEd, mRd, nil
}

// ConcentratedLoad evaluates the bearing check under a concentrated load
// near mid-wall, with a fixed nominal bearing plate (no plate geometry
// in the declared schema) and a conservative enhancement factor beta.
func ConcentratedLoad(in Inputs, n []float64) (ur, nRdc float64) {
	fd := in.Type.FK / in.Type.GammaC
	aPlate := concentratedBearingLength * in.Thickness
	nRdc = concentratedBeta * fd * aPlate

	maxN := 0.0
	for _, x := range n {
		if x < 0 && -x > maxN {
			maxN = -x
		}
	}
	return maxN / nRdc, nRdc
}
