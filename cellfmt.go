// Package cellfmt renders spreadsheet values through custom number formats
// such as `#,##0.00;[Red](#,##0.00)` or `yyyy"年"m"月"d"日"`, reproducing
// the display rules of the spreadsheet applications that define them.
//
// # Quick start
//
//	text, err := cellfmt.FormatValue(`#,##0.00;[Red](#,##0.00)`, cellfmt.Number(-1234.5))
//	// text == "(1,234.50)"
//
// For repeated use compile once and render many times; a [Format] is
// immutable and safe for concurrent use:
//
//	f, err := cellfmt.Compile("yyyy-mm-dd hh:mm")
//	res, err := f.Render(cellfmt.Number(45356.5))
//	// res.Text == "2024-03-05 12:00"
//
// The cache package shares compiled formats between goroutines, and the xlsx
// package renders the cells of an excelize workbook directly.
//
// # Dates
//
// Spreadsheets store dates as serial day numbers.  [ConvertDate] and
// [TimeToSerial] convert between serials and [time.Time] in either the 1900
// or the 1904 date system.  The 1900 system keeps the phantom 1900-02-29:
// serials 60 and 61 both convert to 1900-03-01.
//
// # Format detection
//
// [IsDateFormat] reports whether a numFmtId (and optional custom pattern)
// renders dates.
package cellfmt

import (
	"fmt"
	"math"
	"time"

	"github.com/TsubasaBE/go-cellfmt/epoch"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
	"github.com/TsubasaBE/go-cellfmt/styles"
)

// Version is the current version of the go-cellfmt library.
const Version = "0.1.0"

// Re-exported renderer types.
type (
	Format = numfmt.Format
	Result = numfmt.Result
	Value  = numfmt.Value
	Option = numfmt.Option
)

// Value constructors.
var (
	Text   = numfmt.Text
	Number = numfmt.Number
	Date   = numfmt.Date
	Bool   = numfmt.Bool
)

// Compile parses pattern.  See [numfmt.Compile].
func Compile(pattern string, opts ...Option) (*Format, error) {
	return numfmt.Compile(pattern, opts...)
}

// FormatValue renders v with pattern and returns the display text.
func FormatValue(pattern string, v Value, opts ...Option) (string, error) {
	f, err := numfmt.Compile(pattern, opts...)
	if err != nil {
		return "", err
	}
	res, err := f.Render(v)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// maxSerial is one above the serial of 9999-12-31 in the 1900 system.
const maxSerial = 2_958_466

// ConvertDate converts a serial day number to a time in UTC.  Serials that
// are not finite, negative, or past 9999-12-31 are rejected.
func ConvertDate(serial float64, date1904 bool) (time.Time, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: invalid value %v", serial)
	}
	if serial < 0 {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: negative serial %v not supported", serial)
	}
	limit := float64(maxSerial)
	if date1904 {
		limit -= 1462
	}
	if serial > limit {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDate: serial %v exceeds maximum supported value %v", serial, limit)
	}
	return epoch.SerialToTime(serial, date1904), nil
}

// SerialToTime converts a serial to its wall-clock time without range
// checks.  Non-finite serials return the epoch base.
func SerialToTime(serial float64, date1904 bool) time.Time {
	return epoch.SerialToTime(serial, date1904)
}

// TimeToSerial converts the wall-clock fields of t to a serial day number.
func TimeToSerial(t time.Time, date1904 bool) float64 {
	return epoch.TimeToSerial(t, date1904)
}

// IsDateFormat reports whether a number format renders dates or times.
// Built-in IDs are looked up; a custom pattern is compiled and its first
// section classified.  Patterns that fail to compile are not date formats.
func IsDateFormat(numFmtID int, pattern string) bool {
	if pattern == "" {
		return styles.IsBuiltInDate(numFmtID)
	}
	f, err := numfmt.Compile(pattern)
	if err != nil {
		return false
	}
	return f.IsDate()
}
