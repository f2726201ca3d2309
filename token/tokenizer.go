package token

// Section separator and the characters with special meaning to the scanner.
const (
	quote       = '"'
	backslash   = '\\'
	bang        = '!'
	bracketOpen = '['
	bracketEnd  = ']'
	semicolon   = ';'
	underscore  = '_'
	asterisk    = '*'
)

// Tokenize scans pattern left to right into a [Stream].
//
// Priority of the recognised forms:
//
//  1. "..." quoted literal.  Inside quotes nothing is special, so a
//     backslash right before the closing quote stays part of the literal
//     ("\" is the one-character literal \).  An unterminated quote runs to
//     the end of the pattern.
//  2. \X and !X escape the next character.
//  3. [...] bracketed clause, closed by the first ].  Brackets do not nest;
//     an unclosed [ degrades into plain factor text.
//  4. ; section separator.
//  5. _X and *X fill hints.  X may itself be an escape (_\) consumes three
//     characters).
//
// Everything else accumulates into a pending buffer which is flushed as a
// Factor before the next special token and at end of input.
func Tokenize(pattern string) Stream {
	rs := []rune(pattern)
	var (
		out     Stream
		pending []rune
	)
	flush := func() {
		if len(pending) > 0 {
			out = append(out, Token{Kind: Factor, Value: string(pending), Raw: string(pending)})
			pending = pending[:0]
		}
	}

	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == quote:
			flush()
			j := i + 1
			for j < len(rs) && rs[j] != quote {
				j++
			}
			end := j + 1
			if j >= len(rs) {
				end = len(rs)
			}
			out = append(out, Token{Kind: Literal, Value: string(rs[i+1 : j]), Raw: string(rs[i:end])})
			i = end

		case c == backslash || c == bang:
			if i+1 >= len(rs) {
				// Dangling escape at end of input.
				pending = append(pending, c)
				i++
				continue
			}
			flush()
			out = append(out, Token{Kind: EscapedChar, Value: string(rs[i+1]), Raw: string(rs[i : i+2])})
			i += 2

		case c == bracketOpen:
			j := i + 1
			for j < len(rs) && rs[j] != bracketEnd {
				j++
			}
			if j >= len(rs) {
				pending = append(pending, rs[i:]...)
				i = len(rs)
				continue
			}
			flush()
			clause := string(rs[i : j+1])
			out = append(out, Token{Kind: Bracket, Value: clause, Raw: clause})
			i = j + 1

		case c == semicolon:
			flush()
			out = append(out, Token{Kind: Symbol, Value: ";", Raw: ";"})
			i++

		case c == underscore || c == asterisk:
			flush()
			kind := FillSpace
			if c == asterisk {
				kind = RepeatFill
			}
			hint, n := fillHint(rs[i+1:])
			out = append(out, Token{Kind: kind, Value: hint, Raw: string(rs[i : i+1+n])})
			i += 1 + n

		default:
			pending = append(pending, c)
			i++
		}
	}
	flush()
	return out
}

// fillHint returns the hint character following _ or * and the number of
// runes it occupies.  An escaped hint (\X or !X) occupies two.
func fillHint(rest []rune) (string, int) {
	switch {
	case len(rest) == 0:
		return "", 0
	case (rest[0] == backslash || rest[0] == bang) && len(rest) > 1:
		return string(rest[1]), 2
	default:
		return string(rest[0]), 1
	}
}
