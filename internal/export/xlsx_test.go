package export

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pkg.jsn.cam/surveysynth/internal/survey"
)

func TestWriteXLSX(t *testing.T) {
	data := testDataset(t, 20, 25)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, data))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, len(data)+1)
	assert.Equal(t, survey.Header(), rows[0])

	for i, r := range data {
		row := rows[i+1]
		assert.Equal(t, r.Role, row[0])
		assert.Equal(t, FormatList(r.EthicalPriorities), row[19])

		v, err := strconv.ParseFloat(row[5], 64)
		require.NoError(t, err)
		assert.InDelta(t, r.PersonalizedLearning, v, 1e-9)
	}
}
