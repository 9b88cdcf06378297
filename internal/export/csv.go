package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"pkg.jsn.cam/surveysynth/internal/survey"
)

// WriteCSV writes the header row and one row per record, in record order
func WriteCSV(w io.Writer, data survey.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(survey.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(survey.Columns))
	for i := range data {
		encodeRow(&data[i], row)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file written by WriteCSV. The header must match the schema exactly.
func ReadCSV(r io.Reader) (survey.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(survey.Columns)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrHeaderMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if !slices.Equal(header, survey.Header()) {
		return nil, fmt.Errorf("%w: got %q", ErrHeaderMismatch, header)
	}

	var data survey.Dataset
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}

		rec, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		data = append(data, rec)
	}

	return data, nil
}

func encodeRow(r *survey.Record, row []string) {
	for i, c := range survey.Columns {
		switch c.Kind {
		case survey.KindLabel:
			row[i] = c.Label(r)
		case survey.KindScale:
			row[i] = FormatScale(c.Scale(r))
		case survey.KindList:
			row[i] = FormatList(c.List(r))
		}
	}
}

func decodeRow(row []string) (survey.Record, error) {
	var r survey.Record

	for i, c := range survey.Columns {
		switch c.Kind {
		case survey.KindLabel:
			c.SetLabel(&r, row[i])
		case survey.KindScale:
			v, err := ParseScale(row[i])
			if err != nil {
				return r, fmt.Errorf("%w: %s: %v", ErrMalformedRow, c.Name, err)
			}
			c.SetScale(&r, v)
		case survey.KindList:
			items, err := ParseList(row[i])
			if err != nil {
				return r, fmt.Errorf("%s: %w", c.Name, err)
			}
			c.SetList(&r, items)
		}
	}

	if err := r.Validate(); err != nil {
		return r, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	return r, nil
}
