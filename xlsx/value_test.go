package xlsx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

func TestToValue(t *testing.T) {
	tests := []struct {
		name string
		typ  excelize.CellType
		raw  string
		kind numfmt.ValueKind
		text string
	}{
		{"bool true", excelize.CellTypeBool, "1", numfmt.ValueBool, "TRUE"},
		{"bool false", excelize.CellTypeBool, "0", numfmt.ValueBool, "FALSE"},
		{"error", excelize.CellTypeError, "#DIV/0!", numfmt.ValueError, "#DIV/0!"},
		{"shared string", excelize.CellTypeSharedString, "12", numfmt.ValueText, "12"},
		{"formula string", excelize.CellTypeFormula, "x", numfmt.ValueText, "x"},
		{"number", excelize.CellTypeUnset, "2.5", numfmt.ValueNumber, "2.5"},
		{"typed number", excelize.CellTypeNumber, "-3", numfmt.ValueNumber, "-3"},
		{"blank", excelize.CellTypeUnset, "", numfmt.ValueBlank, ""},
		{"unparsable date", excelize.CellTypeDate, "soon", numfmt.ValueText, "soon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := toValue(tc.typ, tc.raw, false)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.text, v.Text())
		})
	}

	v := toValue(excelize.CellTypeDate, "2024-03-05T14:07:09Z", true)
	assert.Equal(t, numfmt.ValueDate, v.Kind())
	assert.True(t, v.Date1904())
	assert.Equal(t, time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC), v.Time())
}
