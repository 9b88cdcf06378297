package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatList(t *testing.T) {
	got := FormatList([]string{"Academic integrity", "Avoiding algorithmic bias", "Transparency in AI algorithms"})
	assert.Equal(t, "['Academic integrity', 'Avoiding algorithmic bias', 'Transparency in AI algorithms']", got)
}

func TestParseList_InvertsFormat(t *testing.T) {
	tests := [][]string{
		{},
		{"one"},
		{"a, with comma", "it's quoted", `back\slash`},
		{"  padded  ", "ünïcode"},
	}

	for _, items := range tests {
		got, err := ParseList(FormatList(items))
		require.NoError(t, err)
		assert.Equal(t, items, got)
	}
}

func TestParseList_Malformed(t *testing.T) {
	for _, cell := range []string{
		"",
		"'a', 'b'",
		"[a]",
		"['a' 'b']",
		"['a',]",
		"['unterminated]",
	} {
		_, err := ParseList(cell)
		assert.ErrorIs(t, err, ErrMalformedList, "cell %q", cell)
	}
}

func TestFormatScale(t *testing.T) {
	assert.Equal(t, "1", FormatScale(1))
	assert.Equal(t, "3.25", FormatScale(3.25))

	v := 2.718281828459045
	got, err := ParseScale(FormatScale(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
