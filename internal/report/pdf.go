// Package report exports calculation results as shareable documents:
// a PDF summary report and an Excel hydrostatics table.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
)

// PDFInput collects everything that goes into a report. Stability is
// optional; the section is skipped when it is nil.
type PDFInput struct {
	Hull      *hull.Hull
	Loadcase  hydro.Loadcase
	Result    *hydro.Result
	Stability *stability.Curve
}

// WritePDF renders the hydrostatics report to a file.
func WritePDF(in PDFInput, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Hydrostatics & Stability Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	name := in.Hull.Name
	if name == "" {
		name = "(unnamed hull)"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Vessel: %s", name))
	pdf.Ln(6)
	if in.Hull.Description != "" {
		pdf.Cell(0, 6, in.Hull.Description)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Lpp: %.2f m    Beam: %.2f m", in.Hull.Lpp, in.Hull.Beam))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fluid density: %.1f kg/m3", in.Loadcase.Rho))
	pdf.Ln(6)
	if in.Loadcase.KG != nil {
		pdf.Cell(0, 6, fmt.Sprintf("KG: %.3f m", *in.Loadcase.KG))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "HYDROSTATICS AT DRAFT")
	r := in.Result
	rows := [][2]string{
		{"Draft", fmt.Sprintf("%.3f m", r.Draft)},
		{"Displaced volume", fmt.Sprintf("%.2f m3", r.Volume)},
		{"Displacement", fmt.Sprintf("%.0f kg", r.Displacement)},
		{"KB", fmt.Sprintf("%.3f m", r.KB)},
		{"LCB", fmt.Sprintf("%.3f m", r.LCB)},
		{"LCF", fmt.Sprintf("%.3f m", r.LCF)},
		{"Awp", fmt.Sprintf("%.2f m2", r.Awp)},
		{"Iwp", fmt.Sprintf("%.2f m4", r.Iwp)},
		{"BMt", fmt.Sprintf("%.3f m", r.BMt)},
		{"BMl", fmt.Sprintf("%.3f m", r.BMl)},
	}
	if r.GMt != nil {
		rows = append(rows, [2]string{"GMt", fmt.Sprintf("%.3f m", *r.GMt)})
	}
	if r.GMl != nil {
		rows = append(rows, [2]string{"GMl", fmt.Sprintf("%.3f m", *r.GMl)})
	}
	rows = append(rows,
		[2]string{"Cb", fmt.Sprintf("%.4f", r.Cb)},
		[2]string{"Cp", fmt.Sprintf("%.4f", r.Cp)},
		[2]string{"Cm", fmt.Sprintf("%.4f", r.Cm)},
		[2]string{"Cwp", fmt.Sprintf("%.4f", r.Cwp)},
	)
	table(pdf, rows)

	if s := in.Stability; s != nil {
		pdf.Ln(6)
		section(pdf, "STABILITY SUMMARY")
		vanish := fmt.Sprintf("%.2f deg", s.VanishingAngle)
		if s.Truncated {
			vanish += " (no zero crossing within swept range)"
		}
		table(pdf, [][2]string{
			{"Method", string(s.Method)},
			{"Initial GMt", fmt.Sprintf("%.3f m", s.InitialGMT)},
			{"Max GZ", fmt.Sprintf("%.3f m at %.1f deg", s.MaxGZ, s.AngleAtMaxGZ)},
			{"Vanishing angle", vanish},
			{"Area 0-30 deg", fmt.Sprintf("%.4f m-rad", s.AreaTo30)},
			{"Area 30-vanishing", fmt.Sprintf("%.4f m-rad", s.Area30ToVanishing)},
		})
	}

	return pdf.OutputFileAndClose(filename)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
}
