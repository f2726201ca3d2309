package numfmt

import (
	"fmt"
	"time"

	"github.com/TsubasaBE/go-cellfmt/epoch"
)

// ValueKind is the runtime type of a cell value.
type ValueKind uint8

// Value kinds.
const (
	ValueBlank ValueKind = iota
	ValueText
	ValueNumber
	ValueDate
	ValueBool
	ValueError
)

func (k ValueKind) String() string {
	switch k {
	case ValueBlank:
		return "blank"
	case ValueText:
		return "text"
	case ValueNumber:
		return "number"
	case ValueDate:
		return "date"
	case ValueBool:
		return "boolean"
	case ValueError:
		return "error"
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Value is a read-only cell value.
//
// Number returns the serial of a date value; Time returns the calendar time
// of a number value.  Date1904 reports the epoch system serials are counted
// in.
type Value interface {
	Kind() ValueKind
	Text() string
	Number() float64
	Time() time.Time
	Bool() bool
	Date1904() bool
}

// Cell is the [Value] implementation returned by the constructors below.
type Cell struct {
	kind     ValueKind
	text     string
	num      float64
	t        time.Time
	b        bool
	date1904 bool
}

// Text returns a text value.
func Text(s string) Cell { return Cell{kind: ValueText, text: s} }

// Number returns a numeric value.
func Number(v float64) Cell { return Cell{kind: ValueNumber, num: v} }

// Date returns a date value.  Only its wall-clock fields are used.
func Date(t time.Time) Cell { return Cell{kind: ValueDate, t: t} }

// Bool returns a boolean value.
func Bool(b bool) Cell { return Cell{kind: ValueBool, b: b} }

// ErrorValue returns an error value such as "#DIV/0!".  No section renders
// it.
func ErrorValue(code string) Cell { return Cell{kind: ValueError, text: code} }

// Blank returns the empty value.
func Blank() Cell { return Cell{} }

// In1904 returns c with serials counted in the 1904 system.
func (c Cell) In1904(on bool) Cell {
	c.date1904 = on
	return c
}

func (c Cell) Kind() ValueKind { return c.kind }
func (c Cell) Date1904() bool  { return c.date1904 }

func (c Cell) Text() string {
	switch c.kind {
	case ValueBool:
		if c.b {
			return "TRUE"
		}
		return "FALSE"
	case ValueNumber, ValueDate:
		return fmt.Sprint(c.Number())
	}
	return c.text
}

func (c Cell) Number() float64 {
	switch c.kind {
	case ValueDate:
		return epoch.TimeToSerial(c.t, c.date1904)
	case ValueBool:
		if c.b {
			return 1
		}
	}
	return c.num
}

func (c Cell) Time() time.Time {
	if c.kind == ValueDate {
		return c.t
	}
	return epoch.SerialToTime(c.num, c.date1904)
}

func (c Cell) Bool() bool { return c.b }
