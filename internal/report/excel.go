package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gohydro/internal/curves"
)

// hydrostatic table column order
var excelColumns = []curves.Type{
	curves.Displacement, curves.Volume, curves.KB, curves.LCB, curves.LCF,
	curves.BMt, curves.GMt, curves.Awp, curves.Iwp,
	curves.Cb, curves.Cp, curves.Cm, curves.Cwp,
}

// WriteExcel writes a hydrostatics table workbook: one row per draft,
// one column per curve present in the map.
func WriteExcel(cs map[curves.Type]*curves.Curve, filename string) error {
	if len(cs) == 0 {
		return fmt.Errorf("no curves to export")
	}

	// all curves share the same draft samples; take them from any one
	var drafts []float64
	for _, c := range cs {
		for _, p := range c.Points {
			drafts = append(drafts, p.X)
		}
		break
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Hydrostatics"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetCellValue(sheet, "A1", "Draft (m)"); err != nil {
		return err
	}

	col := 1
	for _, t := range excelColumns {
		c, ok := cs[t]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.YLabel); err != nil {
			return err
		}
		for row, p := range c.Points {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, p.Y); err != nil {
				return err
			}
		}
		col++
	}

	for row, d := range drafts {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, d); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}
