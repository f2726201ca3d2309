// Package condition decodes the bracketed clauses of a number-format section
// ([>=100], [Red], [$-411], [DBNum1], [h]) and assigns the default match
// conditions of sections that carry none.
package condition

import (
	"errors"
	"fmt"
	"strconv"
)

// Op is a comparison operator.
type Op uint8

// Comparison operators.  Always matches every value.
const (
	Always Op = iota
	Equal
	NotEqual
	GreaterThan
	LessThan
	GreaterOrEqual
	LessOrEqual
)

var opText = [...]string{
	Always:         "",
	Equal:          "=",
	NotEqual:       "<>",
	GreaterThan:    ">",
	LessThan:       "<",
	GreaterOrEqual: ">=",
	LessOrEqual:    "<=",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		if o == Always {
			return "Always"
		}
		return opText[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// parseOp maps operator text to an Op.
func parseOp(s string) (Op, bool) {
	for op, txt := range opText {
		if op != int(Always) && txt == s {
			return Op(op), true
		}
	}
	return Always, false
}

// Condition is a section's match condition.
type Condition struct {
	Op    Op
	Value float64
}

// Match reports whether v satisfies c.
func (c Condition) Match(v float64) bool {
	switch c.Op {
	case Equal:
		return v == c.Value
	case NotEqual:
		return v != c.Value
	case GreaterThan:
		return v > c.Value
	case LessThan:
		return v < c.Value
	case GreaterOrEqual:
		return v >= c.Value
	case LessOrEqual:
		return v <= c.Value
	}
	return true
}

// NegativeOnly reports whether every value c matches is below zero.  A section
// selected by such a condition renders magnitudes without a minus sign.
func (c Condition) NegativeOnly() bool {
	switch c.Op {
	case LessThan:
		return c.Value <= 0
	case LessOrEqual, Equal:
		return c.Value < 0
	}
	return false
}

func (c Condition) String() string {
	if c.Op == Always {
		return "Always"
	}
	return "[" + opText[c.Op] + strconv.FormatFloat(c.Value, 'g', -1, 64) + "]"
}

// ErrTooManyDefaults is returned by [Default] when more than three non-text
// sections need a default condition.
var ErrTooManyDefaults = errors.New("condition: more than 3 sections without explicit conditions")

// Default returns the implicit condition of non-text section i out of n when
// the section has no explicit comparison.  firstExplicit reports whether
// section 0 carried one; it only matters for the second of two sections.
//
//	n = 1: Always
//	n = 2: >=0, then <0 (Always when section 0 was explicit)
//	n = 3: >0, <0, Always
func Default(i, n int, firstExplicit bool) (Condition, error) {
	switch {
	case n > 3:
		return Condition{}, ErrTooManyDefaults
	case n <= 1:
		return Condition{Op: Always}, nil
	case n == 2:
		if i == 0 {
			return Condition{Op: GreaterOrEqual}, nil
		}
		if firstExplicit {
			return Condition{Op: Always}, nil
		}
		return Condition{Op: LessThan}, nil
	}
	switch i {
	case 0:
		return Condition{Op: GreaterThan}, nil
	case 1:
		return Condition{Op: LessThan}, nil
	}
	return Condition{Op: Always}, nil
}
