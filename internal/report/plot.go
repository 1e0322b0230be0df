package report

import (
	"fmt"
	"image/color"

	"github.com/HJ-nkh/frameanalysis/internal/analysis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportForceDiagram renders one member's N, V or M series against its
// local x-coordinate for one combination, adapted from the teacher's
// diagram.ExportSectionDiagram (a single outlined curve over a filled
// baseline region rather than a beam cross-section outline).
func ExportForceDiagram(res *analysis.Result, lsName, memberID, combName, quantity, filename string) error {
	dm, ok := res.FEMModel.Members[memberID]
	if !ok {
		return fmt.Errorf("no such member %q", memberID)
	}
	forces, ok := res.Forces[lsName]
	if !ok {
		return fmt.Errorf("no such limit state %q", lsName)
	}

	var series map[string][]float64
	var ylabel string
	switch quantity {
	case "N":
		series, ylabel = forces.N, "Axial force N [N]"
	case "V":
		series, ylabel = forces.V, "Shear force V [N]"
	case "M":
		series, ylabel = forces.M, "Bending moment M [Nm]"
	case "deflection":
		series, ylabel = forces.ULocalY, "Local deflection [m]"
	default:
		return fmt.Errorf("unknown quantity %q", quantity)
	}
	values, ok := series[combName]
	if !ok {
		return fmt.Errorf("no such combination %q in %s", combName, lsName)
	}
	if dm.Samples == 0 || len(dm.XLocal) != dm.Samples {
		return fmt.Errorf("member %q has no discretization grid", memberID)
	}
	xLocal := dm.XLocal
	vals := values[dm.Offset : dm.Offset+dm.Samples]

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Member %s — %s (%s/%s)", memberID, ylabel, lsName, combName)
	p.X.Label.Text = "x along member [m]"
	p.Y.Label.Text = ylabel

	curve := make(plotter.XYs, len(xLocal))
	for i := range xLocal {
		curve[i] = plotter.XY{X: xLocal[i], Y: vals[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	baseline := make(plotter.XYs, len(xLocal))
	for i, x := range xLocal {
		baseline[i] = plotter.XY{X: x, Y: 0}
	}
	zero, err := plotter.NewLine(baseline)
	if err != nil {
		return err
	}
	zero.LineStyle.Color = color.Gray{Y: 150}
	p.Add(zero)

	return p.Save(6*vg.Inch, 3*vg.Inch, filename)
}
