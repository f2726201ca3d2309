// Package numfmt compiles spreadsheet number-format patterns and renders cell
// values with them.
//
//	f, err := numfmt.Compile(`#,##0.00;[Red](#,##0.00)`)
//	res, err := f.Render(numfmt.Number(-1234.5))
//	// res.Text == "(1,234.50)", res.Color == condition.Red
//
// Compiling tokenizes the pattern, splits it into at most four sections,
// classifies each as a number, date or text section, decodes its bracketed
// clauses and builds its terms.  A compiled [Format] is immutable and safe
// for concurrent use.
package numfmt

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/TsubasaBE/go-cellfmt/condition"
	"github.com/TsubasaBE/go-cellfmt/epoch"
	"github.com/TsubasaBE/go-cellfmt/locale"
	"github.com/TsubasaBE/go-cellfmt/numeric"
	"github.com/TsubasaBE/go-cellfmt/styles"
	"github.com/TsubasaBE/go-cellfmt/term"
	"github.com/TsubasaBE/go-cellfmt/token"
)

// Section is one compiled section of a pattern.
type Section struct {
	// Pattern is the section's source text.
	Pattern   string
	Kind      Kind
	Condition condition.Condition
	// Explicit reports whether Condition came from a comparison clause.  A
	// malformed clause counts and holds Always.
	Explicit  bool
	Locale    locale.ID
	HasLocale bool
	Color     condition.Color
	Numeral   condition.Numeral

	terms    []term.Term
	layout   layout
	fraction int // fractional-second digits of a date section
}

// Terms returns a copy of the section's terms.
func (s *Section) Terms() []term.Term {
	return append([]term.Term(nil), s.terms...)
}

// Format is a compiled pattern.
type Format struct {
	pattern  string
	sections []*Section
	cfg      config
}

// Result is a rendered value.
type Result struct {
	Text  string
	Color condition.Color
	// Pattern is the source text of the section that rendered the value,
	// or "General" / "@" for the fallbacks.
	Pattern string
	Kind    Kind
}

// ── compile ──────────────────────────────────────────────────────────────────

// Compile parses pattern.  The empty pattern and "General" compile to the
// general format.  Errors are *[ParseError] values wrapping
// [ErrTooManySections] or [ErrTooManyDefaultSections].
func Compile(pattern string, opts ...Option) (*Format, error) {
	cfg := newConfig(opts)
	f := &Format{pattern: pattern, cfg: cfg}
	if pattern == "" {
		pattern = "General"
	}

	groups, err := SplitSections(token.Tokenize(pattern))
	if err != nil {
		return nil, &ParseError{Pattern: f.pattern, Err: err}
	}
	for _, g := range groups {
		f.sections = append(f.sections, compileSection(g, f.pattern, cfg.logger))
	}
	if err := assignDefaults(f.sections); err != nil {
		return nil, &ParseError{Pattern: f.pattern, Err: err}
	}
	return f, nil
}

// MustCompile is [Compile] for patterns known to be valid.  It panics on
// error.
func MustCompile(pattern string, opts ...Option) *Format {
	f, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func compileSection(g token.Stream, pattern string, log *slog.Logger) *Section {
	s := &Section{
		Pattern:   g.Raw(),
		Kind:      Classify(g),
		Condition: condition.Condition{Op: condition.Always},
	}

	currencies := make(map[string]string)
	for _, b := range g.Brackets() {
		c := condition.Parse(b.Value)
		switch c.Kind {
		case condition.ClauseCondition:
			if c.Malformed {
				log.Warn("numfmt: unrecognised comparison operator", "pattern", pattern, "clause", c.Raw)
			}
			if !s.Explicit {
				s.Condition, s.Explicit = c.Condition, true
			}
		case condition.ClauseLocale:
			if c.HasLocale && !s.HasLocale {
				s.Locale, s.HasLocale = c.Locale, true
			}
			currencies[c.Raw] = c.Currency
		case condition.ClauseColor:
			if s.Color == condition.NoColor {
				s.Color = c.Color
			}
		case condition.ClauseNumeral:
			s.Numeral = c.Numeral
		case condition.ClauseElapsed:
			// Built into a term by the date builder.
		default:
			log.Debug("numfmt: ignoring unknown clause", "pattern", pattern, "clause", c.Raw)
		}
	}
	currency := func(t token.Token) (string, bool) {
		sym, ok := currencies[t.Value]
		return sym, ok && sym != ""
	}

	switch s.Kind {
	case KindText:
		s.terms = buildText(g, currency)
	case KindDate:
		s.terms, s.fraction = buildDate(g, currency)
	default:
		s.terms, s.layout = buildNumber(g, currency)
	}
	return s
}

// assignDefaults gives the non-text sections without a comparison clause
// their implicit conditions.
func assignDefaults(sections []*Section) error {
	var nonText []*Section
	for _, s := range sections {
		if s.Kind != KindText {
			nonText = append(nonText, s)
		}
	}
	if len(nonText) == 0 {
		return nil
	}
	firstExplicit := nonText[0].Explicit
	for i, s := range nonText {
		if s.Explicit {
			continue
		}
		c, err := condition.Default(i, len(nonText), firstExplicit)
		if err != nil {
			return err
		}
		s.Condition = c
	}
	return nil
}

// Pattern returns the source pattern.
func (f *Format) Pattern() string { return f.pattern }

// Sections returns the compiled sections in pattern order.
func (f *Format) Sections() []*Section {
	return append([]*Section(nil), f.sections...)
}

// IsDate reports whether the first section is a date section.
func (f *Format) IsDate() bool {
	return len(f.sections) > 0 && f.sections[0].Kind == KindDate
}

// ── render ───────────────────────────────────────────────────────────────────

// Render formats v with the first section that accepts it.  Text and
// booleans go to text sections; numbers and dates to the first number or
// date section whose condition matches.  Values no section accepts fall back
// to General (numbers) or @ (text).  Blank and error values return a
// *[RenderError] wrapping [ErrNoMatchingSection].
func (f *Format) Render(v Value, opts ...Option) (Result, error) {
	cfg := f.cfg.with(opts)
	switch v.Kind() {
	case ValueText, ValueBool:
		for _, s := range f.sections {
			if s.Kind == KindText {
				return s.render(v, cfg), nil
			}
		}
		return Result{Text: v.Text(), Pattern: "@", Kind: KindText}, nil

	case ValueNumber, ValueDate:
		n := v.Number()
		for _, s := range f.sections {
			if s.Kind != KindText && s.Condition.Match(n) {
				return s.render(v, cfg), nil
			}
		}
		return Result{Text: numeric.General(n), Pattern: "General", Kind: KindNumber}, nil
	}
	return Result{}, &RenderError{Value: v, Err: ErrNoMatchingSection}
}

func (s *Section) render(v Value, cfg config) Result {
	ctx := &term.Context{
		Locale:    cfg.locale,
		Resources: cfg.resources,
	}
	if s.HasLocale && s.Locale.Known {
		ctx.Locale = s.Locale.Tag
	}

	var sb strings.Builder
	switch s.Kind {
	case KindText:
		ctx.Text = v.Text()
	case KindDate:
		serial := roundSerial(v.Number(), s.fraction)
		ctx.Serial, ctx.Value = serial, serial
		ctx.Time = epoch.SerialToTime(serial, v.Date1904())
	default:
		n := v.Number()
		ctx.Value = n
		ctx.Number = s.layout.decompose(n)
		if n < 0 && !s.Condition.NegativeOnly() {
			sb.WriteByte('-')
		}
	}
	sb.WriteString(term.RenderAll(s.terms, ctx))

	text := sb.String()
	if s.Numeral.Applies(cfg.locale, s.Locale) {
		text = s.Numeral.Apply(text)
	}
	return Result{Text: text, Color: s.Color, Pattern: s.Pattern, Kind: s.Kind}
}

// roundSerial rounds a serial to the shown precision: whole seconds, or
// digits decimals of a second.
func roundSerial(serial float64, digits int) float64 {
	unit := 86400 * math.Pow10(digits)
	return math.Floor(serial*unit+0.5) / unit
}

// ── convenience ──────────────────────────────────────────────────────────────

// FormatValue renders v using the given number format.
//
//   - numFmtID is the numFmtId of the cell's style (0 = General).
//   - pattern is the custom format code; pass "" for built-in IDs.
//
// It compiles the pattern on every call; hold a [Format] or use the cache
// package to render many values.
func FormatValue(v Value, numFmtID int, pattern string, opts ...Option) (string, error) {
	f, err := Compile(ResolvePattern(numFmtID, pattern), opts...)
	if err != nil {
		return "", err
	}
	res, err := f.Render(v)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// ResolvePattern returns the effective pattern: the custom pattern when
// non-empty, the built-in pattern for numFmtID when known, or "General".
func ResolvePattern(numFmtID int, pattern string) string {
	return styles.Resolve(numFmtID, pattern)
}

func (s *Section) String() string {
	return fmt.Sprintf("%s %s %q", s.Kind, s.Condition, s.Pattern)
}
