package numfmt

import (
	"strings"

	"github.com/TsubasaBE/go-cellfmt/term"
	"github.com/TsubasaBE/go-cellfmt/token"
)

// buildText turns a text section into terms: every @ of the unquoted text
// shows the value, the rest is literal.
func buildText(section token.Stream, currency func(token.Token) (string, bool)) []term.Term {
	var terms []term.Term
	for _, tok := range section {
		switch tok.Kind {
		case token.Factor:
			parts := strings.Split(tok.Value, "@")
			for i, p := range parts {
				if i > 0 {
					terms = append(terms, term.Term{Kind: term.At, Text: "@"})
				}
				if p != "" {
					terms = append(terms, term.Term{Kind: term.Literal, Text: p})
				}
			}
		case token.Bracket:
			if sym, ok := currency(tok); ok {
				terms = append(terms, term.Term{Kind: term.Literal, Text: sym})
			}
		default:
			terms = append(terms, shared(tok))
		}
	}
	return terms
}
