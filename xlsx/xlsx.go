// Package xlsx renders the cells of an excelize workbook the way a
// spreadsheet application displays them.
//
//	f, err := excelize.OpenFile("Book1.xlsx")
//	if err != nil { ... }
//	defer f.Close()
//
//	wb, err := xlsx.New(f)
//	if err != nil { ... }
//	res, err := wb.FormatCell("Sheet1", "B2")
//	fmt.Println(res.Text, res.Color)
//
// The adapter resolves a cell's style to its numFmtId and custom pattern,
// reads the raw cell value with its type and passes the workbook's 1904 flag
// to the renderer.  Compiled patterns are shared through a [cache.Cache].
package xlsx

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TsubasaBE/go-cellfmt/cache"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
	"github.com/TsubasaBE/go-cellfmt/styles"
)

// Workbook wraps an open excelize file.  It reads the style table and the
// date system once, in [New]; styles added to the file afterwards are not
// seen.
type Workbook struct {
	f        *excelize.File
	styles   styles.StyleTable
	date1904 bool
	cache    *cache.Cache
	opts     []numfmt.Option
	logger   *slog.Logger
}

// Option configures a [Workbook].
type Option func(*Workbook)

// WithCache shares c between workbooks.
func WithCache(c *cache.Cache) Option {
	return func(wb *Workbook) {
		if c != nil {
			wb.cache = c
		}
	}
}

// WithRenderOptions sets options applied to every render, such as the
// runtime locale.
func WithRenderOptions(opts ...numfmt.Option) Option {
	return func(wb *Workbook) { wb.opts = append(wb.opts, opts...) }
}

// WithLogger sets the logger used by the adapter and by the default cache.
func WithLogger(l *slog.Logger) Option {
	return func(wb *Workbook) {
		if l != nil {
			wb.logger = l
		}
	}
}

// New reads the style table and date system of f.
func New(f *excelize.File, opts ...Option) (*Workbook, error) {
	wb := &Workbook{f: f, logger: slog.Default()}
	for _, o := range opts {
		o(wb)
	}
	if wb.cache == nil {
		wb.cache = cache.New(cache.WithLogger(wb.logger))
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("xlsx: read workbook properties: %w", err)
	}
	if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}

	wb.styles = readStyles(f)
	wb.logger.Debug("xlsx: loaded workbook", "styles", len(wb.styles), "date1904", wb.date1904)
	return wb, nil
}

// readStyles collects the number format of every cell format, stopping at
// the first index excelize rejects.
func readStyles(f *excelize.File) styles.StyleTable {
	var st styles.StyleTable
	for idx := 0; ; idx++ {
		s, err := f.GetStyle(idx)
		if err != nil || s == nil {
			return st
		}
		x := styles.XFStyle{NumFmtID: s.NumFmt}
		if s.CustomNumFmt != nil {
			x.FormatStr = *s.CustomNumFmt
			if x.NumFmtID == 0 {
				x.NumFmtID = styles.FirstCustomID
			}
		}
		st = append(st, x)
	}
}

// Date1904 reports whether the workbook counts serials in the 1904 system.
func (wb *Workbook) Date1904() bool { return wb.date1904 }

// Styles returns the number formats of the workbook's cell formats.
func (wb *Workbook) Styles() styles.StyleTable { return wb.styles }

// Pattern returns the effective number format of a cell.
func (wb *Workbook) Pattern(sheet, cell string) (string, error) {
	idx, err := wb.f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("xlsx: %s!%s: style: %w", sheet, cell, err)
	}
	return wb.styles.Pattern(idx), nil
}

// IsDate reports whether a cell's number format renders dates.  Built-in
// formats are answered from the ID; custom patterns are compiled through the
// cache and classified by their first section.
func (wb *Workbook) IsDate(sheet, cell string) (bool, error) {
	idx, err := wb.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false, fmt.Errorf("xlsx: %s!%s: style: %w", sheet, cell, err)
	}
	if wb.styles.IsDate(idx) {
		return true, nil
	}
	pattern := wb.styles.FmtStr(idx)
	if pattern == "" {
		return false, nil
	}
	f, err := wb.cache.Get(pattern)
	if err != nil {
		return false, fmt.Errorf("xlsx: %s!%s: %w", sheet, cell, err)
	}
	return f.IsDate(), nil
}

// Value returns the raw value of a cell.
func (wb *Workbook) Value(sheet, cell string) (numfmt.Value, error) {
	typ, err := wb.f.GetCellType(sheet, cell)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %s!%s: type: %w", sheet, cell, err)
	}
	raw, err := wb.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %s!%s: value: %w", sheet, cell, err)
	}
	return toValue(typ, raw, wb.date1904), nil
}

// FormatCell renders one cell.
func (wb *Workbook) FormatCell(sheet, cell string) (numfmt.Result, error) {
	v, err := wb.Value(sheet, cell)
	if err != nil {
		return numfmt.Result{}, err
	}
	if v.Kind() == numfmt.ValueBlank {
		return numfmt.Result{}, nil
	}
	if v.Kind() == numfmt.ValueError {
		// Error codes display as themselves whatever the format.
		return numfmt.Result{Text: v.Text(), Pattern: "General", Kind: numfmt.KindText}, nil
	}
	pattern, err := wb.Pattern(sheet, cell)
	if err != nil {
		return numfmt.Result{}, err
	}
	f, err := wb.cache.Get(pattern)
	if err != nil {
		return numfmt.Result{}, fmt.Errorf("xlsx: %s!%s: %w", sheet, cell, err)
	}
	return f.Render(v, wb.opts...)
}

// FormatSheet renders every cell of a sheet.  Rows are trimmed the way
// excelize trims them: trailing empty cells and rows are dropped.
func (wb *Workbook) FormatSheet(sheet string) ([][]string, error) {
	rows, err := wb.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %s: rows: %w", sheet, err)
	}
	out := make([][]string, len(rows))
	for r, row := range rows {
		out[r] = make([]string, len(row))
		for c := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			res, err := wb.FormatCell(sheet, name)
			if err != nil {
				return nil, err
			}
			out[r][c] = res.Text
		}
	}
	return out, nil
}

// FormatCell renders one cell of f without keeping any state between calls.
func FormatCell(f *excelize.File, sheet, cell string, opts ...numfmt.Option) (numfmt.Result, error) {
	wb, err := New(f, WithRenderOptions(opts...))
	if err != nil {
		return numfmt.Result{}, err
	}
	return wb.FormatCell(sheet, cell)
}

// toValue maps an excelize cell type and raw value onto a renderer value.
func toValue(typ excelize.CellType, raw string, date1904 bool) numfmt.Value {
	switch typ {
	case excelize.CellTypeBool:
		return numfmt.Bool(raw == "1" || strings.EqualFold(raw, "TRUE"))
	case excelize.CellTypeError:
		return numfmt.ErrorValue(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return numfmt.Text(raw)
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return numfmt.Date(t).In1904(date1904)
		}
		if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
			return numfmt.Date(t).In1904(date1904)
		}
		return numfmt.Text(raw)
	}
	if raw == "" {
		return numfmt.Blank()
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return numfmt.Number(v).In1904(date1904)
	}
	return numfmt.Text(raw)
}
