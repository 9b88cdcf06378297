package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pkg.jsn.cam/surveysynth/internal/survey"
)

// SheetName is the worksheet the dataset is written to
const SheetName = "survey"

// WriteXLSX writes the dataset as a single-sheet workbook.
// Scale answers are numeric cells; the ethical priorities use the same list literal as CSV.
func WriteXLSX(w io.Writer, data survey.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}

	header := make([]interface{}, len(survey.Columns))
	for i, c := range survey.Columns {
		header[i] = c.Name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	cells := make([]interface{}, len(survey.Columns))
	for i := range data {
		r := &data[i]
		for j, c := range survey.Columns {
			switch c.Kind {
			case survey.KindLabel:
				cells[j] = c.Label(r)
			case survey.KindScale:
				cells[j] = c.Scale(r)
			case survey.KindList:
				cells[j] = FormatList(c.List(r))
			}
		}

		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(axis, cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	return f.Write(w)
}
