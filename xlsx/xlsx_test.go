package xlsx_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-cellfmt/cache"
	"github.com/TsubasaBE/go-cellfmt/condition"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
	"github.com/TsubasaBE/go-cellfmt/xlsx"
)

const sheet = "Sheet1"

type WorkbookSuite struct {
	suite.Suite
	f *excelize.File
}

func TestWorkbookSuite(t *testing.T) {
	suite.Run(t, new(WorkbookSuite))
}

func (s *WorkbookSuite) SetupTest() {
	s.f = excelize.NewFile()
}

func (s *WorkbookSuite) TearDownTest() {
	s.Require().NoError(s.f.Close())
}

// set writes v to cell with a style built from style.
func (s *WorkbookSuite) set(cell string, v any, style *excelize.Style) {
	s.Require().NoError(s.f.SetCellValue(sheet, cell, v))
	if style == nil {
		return
	}
	id, err := s.f.NewStyle(style)
	s.Require().NoError(err)
	s.Require().NoError(s.f.SetCellStyle(sheet, cell, cell, id))
}

func custom(pattern string) *excelize.Style {
	return &excelize.Style{CustomNumFmt: &pattern}
}

func (s *WorkbookSuite) TestBuiltInFormats() {
	s.set("A1", 1234.5, &excelize.Style{NumFmt: 4})
	s.set("A2", 45356, &excelize.Style{NumFmt: 14})
	s.set("A3", 0.25, &excelize.Style{NumFmt: 10})
	s.set("A4", 45498.666666666664, nil)
	s.set("A5", 1.5, &excelize.Style{NumFmt: 46})

	wb, err := xlsx.New(s.f)
	s.Require().NoError(err)

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "1,234.50"},
		{"A2", "03-05-24"},
		{"A3", "25.00%"},
		{"A4", "45498.66667"},
		{"A5", "36:00:00"},
	}
	for _, tc := range tests {
		res, err := wb.FormatCell(sheet, tc.cell)
		s.Require().NoError(err, tc.cell)
		s.Equal(tc.want, res.Text, tc.cell)
	}
}

func (s *WorkbookSuite) TestIsDate() {
	s.set("A1", 45356, &excelize.Style{NumFmt: 14})
	s.set("A2", 1.5, &excelize.Style{NumFmt: 46})
	s.set("A3", 1234.5, &excelize.Style{NumFmt: 4})
	s.set("A4", 45356, custom(`yyyy"年"m"月"d"日"`))
	s.set("A5", -3, custom(`#,##0;[Red]-#,##0`))
	s.set("A6", 7, nil)

	wb, err := xlsx.New(s.f)
	s.Require().NoError(err)

	tests := []struct {
		cell string
		want bool
	}{
		{"A1", true},
		{"A2", true},
		{"A3", false},
		{"A4", true},
		{"A5", false},
		{"A6", false},
	}
	for _, tc := range tests {
		got, err := wb.IsDate(sheet, tc.cell)
		s.Require().NoError(err, tc.cell)
		s.Equal(tc.want, got, tc.cell)
	}
}

func (s *WorkbookSuite) TestCustomFormats() {
	s.set("B1", -1234, custom(`#,##0_);[Red](#,##0)`))
	s.set("B2", 45356, custom(`yyyy"年"m"月"d"日"`))
	s.set("B3", "abc", custom(`"<"@">"`))

	wb, err := xlsx.New(s.f)
	s.Require().NoError(err)

	res, err := wb.FormatCell(sheet, "B1")
	s.Require().NoError(err)
	s.Equal("(1,234)", res.Text)
	s.Equal(condition.Red, res.Color)

	res, err = wb.FormatCell(sheet, "B2")
	s.Require().NoError(err)
	s.Equal("2024年3月5日", res.Text)
	s.Equal(numfmt.KindDate, res.Kind)

	res, err = wb.FormatCell(sheet, "B3")
	s.Require().NoError(err)
	s.Equal("<abc>", res.Text)

	pattern, err := wb.Pattern(sheet, "B2")
	s.Require().NoError(err)
	s.Equal(`yyyy"年"m"月"d"日"`, pattern)
}

func (s *WorkbookSuite) TestValueKinds() {
	s.set("C1", true, nil)
	s.set("C2", "text", nil)
	s.set("C3", 2.5, nil)

	wb, err := xlsx.New(s.f)
	s.Require().NoError(err)

	tests := []struct {
		cell string
		kind numfmt.ValueKind
		text string
	}{
		{"C1", numfmt.ValueBool, "TRUE"},
		{"C2", numfmt.ValueText, "text"},
		{"C3", numfmt.ValueNumber, "2.5"},
		{"C4", numfmt.ValueBlank, ""},
	}
	for _, tc := range tests {
		v, err := wb.Value(sheet, tc.cell)
		s.Require().NoError(err, tc.cell)
		s.Equal(tc.kind, v.Kind(), tc.cell)

		res, err := wb.FormatCell(sheet, tc.cell)
		s.Require().NoError(err, tc.cell)
		s.Equal(tc.text, res.Text, tc.cell)
	}
}

func (s *WorkbookSuite) TestDate1904() {
	on := true
	s.Require().NoError(s.f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &on}))
	s.set("D1", 0, custom("yyyy-mm-dd"))

	wb, err := xlsx.New(s.f)
	s.Require().NoError(err)
	s.True(wb.Date1904())

	res, err := wb.FormatCell(sheet, "D1")
	s.Require().NoError(err)
	s.Equal("1904-01-01", res.Text)
}

func (s *WorkbookSuite) TestRenderOptionsAndSharedCache() {
	s.set("E1", 45356, custom("mmmm"))
	s.set("E2", 45387, custom("mmmm"))

	c := cache.New()
	wb, err := xlsx.New(s.f, xlsx.WithCache(c), xlsx.WithRenderOptions(numfmt.WithLocale(language.Japanese)))
	s.Require().NoError(err)

	res, err := wb.FormatCell(sheet, "E1")
	s.Require().NoError(err)
	s.Equal("3月", res.Text)
	res, err = wb.FormatCell(sheet, "E2")
	s.Require().NoError(err)
	s.Equal("4月", res.Text)
	s.EqualValues(1, c.Builds())
}

func (s *WorkbookSuite) TestFormatSheet() {
	s.set("A1", "name", nil)
	s.set("B1", "amount", nil)
	s.set("A2", "apples", nil)
	s.set("B2", 1234.5, &excelize.Style{NumFmt: 4})

	wb, err := xlsx.New(s.f)
	s.Require().NoError(err)
	rows, err := wb.FormatSheet(sheet)
	s.Require().NoError(err)
	s.Equal([][]string{{"name", "amount"}, {"apples", "1,234.50"}}, rows)

	_, err = wb.FormatSheet("Missing")
	s.Error(err)
}

func (s *WorkbookSuite) TestFormatCellOneShot() {
	s.set("F1", 0.5, custom("h:mm AM/PM"))
	res, err := xlsx.FormatCell(s.f, sheet, "F1")
	s.Require().NoError(err)
	s.Equal("12:00 PM", res.Text)

	_, err = xlsx.FormatCell(s.f, "Missing", "A1")
	s.Error(err)
}
