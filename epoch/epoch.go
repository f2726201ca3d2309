// Package epoch converts between spreadsheet serial day numbers and calendar
// date/times for the two epoch systems a workbook can use.
//
// # 1900 system
//
// Serial 1 is 1900-01-01 and serial 0 is 1899-12-31.  Lotus 1-2-3 treated
// 1900 as a leap year and spreadsheets kept the bug: serial 60 stands for
// 1900-02-29, a day that never existed.  Serials at or above 61 are shifted
// back by one day to land on the real calendar, so serial 60 and serial 61
// both map to 1900-03-01.  The mapping is therefore not a bijection in
// [60, 61); converting 1900-03-01 back yields 61.
//
// # 1904 system
//
// Serial 0 is 1904-01-01 with no leap-day correction.
//
// # Precision
//
// Times carry whole milliseconds, the finest unit a spreadsheet shows.  A
// serial on a millisecond boundary survives serial → time → serial to within
// 1e-9; any other serial comes back on the nearest millisecond, at most
// 0.5 ms (about 5.8e-9 of a day) away.
//
// Neither direction applies a time zone: times are wall clock values in UTC
// and callers own zone conversion.
package epoch

import (
	"math"
	"math/big"
	"time"
)

// MillisPerDay is the length of a serial day in milliseconds.
const MillisPerDay = 86_400_000

// phantomLeapSerial is the first 1900-system serial that needs the one-day
// correction.
const phantomLeapSerial = 61

// phantomLeapDays is the day offset of 1900-03-01 from the 1900 base.
const phantomLeapDays = 60

var (
	base1900 = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	base1904 = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
)

func base(date1904 bool) time.Time {
	if date1904 {
		return base1904
	}
	return base1900
}

// SerialToTime converts a serial day number to a UTC wall-clock time rounded
// to the nearest millisecond (half up), dropping any sub-millisecond part.
// Non-finite input returns the epoch base.
func SerialToTime(serial float64, date1904 bool) time.Time {
	b := base(date1904)
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return b
	}
	if !date1904 && serial >= phantomLeapSerial {
		serial--
	}
	ms := Millis(serial)
	days := floorDiv(ms, MillisPerDay)
	rem := ms - days*MillisPerDay
	return b.AddDate(0, 0, int(days)).Add(time.Duration(rem) * time.Millisecond)
}

// TimeToSerial converts the wall-clock fields of t to a serial day number.
// The millisecond count is divided by the day length exactly and rounded
// once to the nearest float64, which keeps whole seconds (1/86400 of a day)
// round-tripping through [SerialToTime].
func TimeToSerial(t time.Time, date1904 bool) float64 {
	b := base(date1904)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := (day.Unix() - b.Unix()) / 86400
	if !date1904 && days >= phantomLeapDays {
		days++
	}
	msOfDay := int64(t.Hour())*3_600_000 +
		int64(t.Minute())*60_000 +
		int64(t.Second())*1_000 +
		(int64(t.Nanosecond())+500_000)/1_000_000

	r := new(big.Rat).SetFrac(big.NewInt(days*MillisPerDay+msOfDay), big.NewInt(MillisPerDay))
	f, _ := r.Float64()
	return f
}

// Millis returns the serial expressed in whole milliseconds, rounded half up.
// Elapsed-time terms ([h], [m], [s]) count from this value.
func Millis(serial float64) int64 {
	return int64(math.Floor(serial*MillisPerDay + 0.5))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
