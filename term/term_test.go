package term_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-cellfmt/locale"
	"github.com/TsubasaBE/go-cellfmt/numeric"
	"github.com/TsubasaBE/go-cellfmt/term"
)

func placeholder(text string, part numeric.Part, index int, last bool) term.Term {
	return term.Term{Kind: term.Placeholder, Text: text, Part: part, Index: index, Last: last}
}

func TestPlaceholders(t *testing.T) {
	// "#,##0.00"
	terms := []term.Term{
		{Kind: term.Placeholder, Text: "#", Part: numeric.Integer, Index: 4, Last: true, Group: true},
		{Kind: term.Placeholder, Text: "#", Part: numeric.Integer, Index: 3, Group: true},
		{Kind: term.Placeholder, Text: "#", Part: numeric.Integer, Index: 2, Group: true},
		{Kind: term.Placeholder, Text: "0", Part: numeric.Integer, Index: 1, Group: true},
		{Kind: term.DecimalPoint, Text: "."},
		placeholder("0", numeric.Decimal, 1, false),
		placeholder("0", numeric.Decimal, 2, false),
	}
	tests := []struct {
		v    float64
		want string
	}{
		{1234567.891, "1,234,567.89"},
		{1234, "1,234.00"},
		{123, "123.00"},
		{0.5, "0.50"},
		{0, "0.00"},
	}
	for _, tc := range tests {
		ctx := &term.Context{Number: numeric.NewDecimal(tc.v, 2, 0), Value: tc.v}
		assert.Equal(t, tc.want, term.RenderAll(terms, ctx), "%v", tc.v)
	}
}

func TestQuestionMarkAndHash(t *testing.T) {
	terms := []term.Term{
		placeholder("?", numeric.Integer, 3, true),
		placeholder("?", numeric.Integer, 2, false),
		placeholder("#", numeric.Integer, 1, false),
	}
	ctx := &term.Context{Number: numeric.NewDecimal(5, 0, 0)}
	assert.Equal(t, "  5", term.RenderAll(terms, ctx))
	ctx = &term.Context{Number: numeric.NewDecimal(0, 0, 0)}
	assert.Equal(t, "  ", term.RenderAll(terms, ctx))
}

func TestExponent(t *testing.T) {
	// "0.00E+00"
	terms := []term.Term{
		placeholder("0", numeric.Integer, 1, true),
		{Kind: term.DecimalPoint},
		placeholder("0", numeric.Decimal, 1, false),
		placeholder("0", numeric.Decimal, 2, false),
		{Kind: term.ExponentMarker, Text: "E+"},
		placeholder("0", numeric.Exponent, 2, true),
		placeholder("0", numeric.Exponent, 1, false),
	}
	tests := []struct {
		v    float64
		want string
	}{
		{12345, "1.23E+04"},
		{0.000123, "1.23E-04"},
		{0, "0.00E+00"},
	}
	for _, tc := range tests {
		ctx := &term.Context{Number: numeric.NewExponent(tc.v, 2)}
		assert.Equal(t, tc.want, term.RenderAll(terms, ctx), "%v", tc.v)
	}

	minusOnly := term.Term{Kind: term.ExponentMarker, Text: "E-"}
	assert.Equal(t, "E", minusOnly.Render(&term.Context{Number: numeric.NewExponent(12345, 2)}))
	assert.Equal(t, "E-", minusOnly.Render(&term.Context{Number: numeric.NewExponent(0.01, 2)}))
}

func TestFraction(t *testing.T) {
	// "# ?/?"
	terms := []term.Term{
		placeholder("#", numeric.WholeNumber, 1, true),
		{Kind: term.Literal, Text: " "},
		placeholder("?", numeric.Numerator, 1, true),
		{Kind: term.Slash, Text: "/"},
		placeholder("?", numeric.Denominator, 1, false),
	}
	tests := []struct {
		v    float64
		want string
	}{
		{3.25, "3 1/4"},
		{5, "5    "},
		{0, "0    "},
		{0.5, " 1/2"},
	}
	for _, tc := range tests {
		ctx := &term.Context{Number: numeric.NewFraction(tc.v, 1, true)}
		assert.Equal(t, tc.want, term.RenderAll(terms, ctx), "%v", tc.v)
	}

	// "?/2" with a fixed denominator.
	exact := []term.Term{
		placeholder("?", numeric.Numerator, 1, true),
		{Kind: term.Slash, Text: "/"},
		{Kind: term.Digits, Text: "2"},
	}
	ctx := &term.Context{Number: numeric.NewExactFraction(3.25, 2, false)}
	assert.Equal(t, "7/2", term.RenderAll(exact, ctx))
}

func TestSharedTerms(t *testing.T) {
	ctx := &term.Context{Text: "abc"}
	assert.Equal(t, " ", term.Term{Kind: term.Fill, Text: ")"}.Render(ctx))
	assert.Equal(t, "", term.Term{Kind: term.RepeatFill, Text: "a"}.Render(ctx))
	assert.Equal(t, "x", term.Term{Kind: term.Literal, Text: "x"}.Render(ctx))
	assert.Equal(t, "abc", term.Term{Kind: term.At, Text: "@"}.Render(ctx))
	assert.Equal(t, "1234.5", term.Term{Kind: term.General}.Render(&term.Context{Value: -1234.5}))
}

func TestDateTerms(t *testing.T) {
	tm := time.Date(2024, 3, 5, 14, 7, 9, 250*int(time.Millisecond), time.UTC)
	en := &term.Context{Time: tm, Locale: language.AmericanEnglish, Resources: locale.Default()}
	ja := &term.Context{Time: tm, Locale: language.Japanese, Resources: locale.Default()}
	tests := []struct {
		name string
		term term.Term
		ctx  *term.Context
		want string
	}{
		{"yy", term.Term{Kind: term.Year, Width: 2}, en, "24"},
		{"yyyy", term.Term{Kind: term.Year, Width: 4}, en, "2024"},
		{"m", term.Term{Kind: term.Month, Width: 1}, en, "3"},
		{"mm", term.Term{Kind: term.Month, Width: 2}, en, "03"},
		{"mmm", term.Term{Kind: term.Month, Width: 3}, en, "Mar"},
		{"mmmm", term.Term{Kind: term.Month, Width: 4}, en, "March"},
		{"mmmmm", term.Term{Kind: term.Month, Width: 5}, en, "M"},
		{"mmmm ja", term.Term{Kind: term.Month, Width: 4}, ja, "3月"},
		{"minute", term.Term{Kind: term.Minute, Width: 2}, en, "07"},
		{"d", term.Term{Kind: term.Day, Width: 1}, en, "5"},
		{"ddd", term.Term{Kind: term.Weekday, Text: "ddd", Width: 3}, en, "Tue"},
		{"dddd", term.Term{Kind: term.Weekday, Text: "dddd", Width: 4}, en, "Tuesday"},
		{"aaa", term.Term{Kind: term.Weekday, Text: "aaa", Width: 3}, en, "火"},
		{"aaaa", term.Term{Kind: term.Weekday, Text: "aaaa", Width: 4}, en, "火曜日"},
		{"h", term.Term{Kind: term.Hour, Width: 1}, en, "14"},
		{"h 12", term.Term{Kind: term.Hour, Width: 1, Hour12: true}, en, "2"},
		{"ss", term.Term{Kind: term.Second, Width: 2}, en, "09"},
		{".00", term.Term{Kind: term.FractionalSecond, Width: 2}, en, ".25"},
		{"AM/PM", term.Term{Kind: term.AmPm, Text: "am/pm"}, en, "PM"},
		{"AM/PM ja", term.Term{Kind: term.AmPm, Text: "AM/PM"}, ja, "午後"},
		{"a/p", term.Term{Kind: term.AmPm, Text: "a/p"}, en, "p"},
		{"上午/下午", term.Term{Kind: term.AmPm, Text: "上午/下午"}, en, "下午"},
		{"q", term.Term{Kind: term.Quarter, Width: 1}, en, "Q1"},
		{"ww", term.Term{Kind: term.WeekNumber, Width: 2}, en, "10"},
		{"g", term.Term{Kind: term.EraName, Width: 1}, ja, "R"},
		{"gg", term.Term{Kind: term.EraName, Width: 2}, ja, "令"},
		{"ggg", term.Term{Kind: term.EraName, Width: 3}, ja, "令和"},
		{"e", term.Term{Kind: term.EraYear, Width: 1}, ja, "6"},
		{"ee", term.Term{Kind: term.EraYear, Width: 2}, ja, "06"},
		{"rr", term.Term{Kind: term.EraNameYear, Width: 2}, ja, "令和06"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.term.Render(tc.ctx))
		})
	}
}

func TestElapsed(t *testing.T) {
	// 1 day, 2 hours, 3 minutes, 4 seconds.
	serial := 1 + (2*3600+3*60+4)/86400.0
	ctx := &term.Context{Serial: serial}
	assert.Equal(t, "26", term.Term{Kind: term.ElapsedHour, Width: 1}.Render(ctx))
	assert.Equal(t, "1563", term.Term{Kind: term.ElapsedMinute, Width: 2}.Render(ctx))
	assert.Equal(t, "93784", term.Term{Kind: term.ElapsedSecond, Width: 1}.Render(ctx))
	assert.Equal(t, "00", term.Term{Kind: term.ElapsedHour, Width: 2}.Render(&term.Context{Serial: 0.01}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Minute", term.Minute.String())
	assert.True(t, term.ElapsedSecond.IsDate())
	assert.False(t, term.At.IsDate())
	assert.False(t, term.Placeholder.IsDate())
}
