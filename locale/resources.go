package locale

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Resources is a read-only provider of locale strings.  Lookup must be safe
// for concurrent use.
type Resources interface {
	Lookup(tag language.Tag, key string) (string, bool)
}

// Resource keys.  List entries are addressed with a 1-based suffix:
// "month.short.1" is January, "weekday.long.1" is Sunday.
const (
	KeyMonthShort   = "month.short"
	KeyMonthLong    = "month.long"
	KeyMonthLetter  = "month.letter"
	KeyWeekdayShort = "weekday.short"
	KeyWeekdayLong  = "weekday.long"
	KeyAM           = "ampm.am"
	KeyPM           = "ampm.pm"
	KeyQuarterShort = "quarter.short"
	KeyQuarterLong  = "quarter.long"
	KeyEra          = "era"
)

// Table is a [Resources] backed by a map of tag → key → string.  Lookup walks
// the tag's parent chain (ja-JP → ja → und) and tries the bare language
// before und, so zh-TW (→ zh-Hant) still reaches zh.
type Table map[string]map[string]string

// Lookup implements [Resources].
func (t Table) Lookup(tag language.Tag, key string) (string, bool) {
	for {
		if v, ok := t.get(tag, key); ok {
			return v, true
		}
		if tag == language.Und {
			return "", false
		}
		next := tag.Parent()
		if next == language.Und {
			if b, conf := tag.Base(); conf != language.No {
				if bare := language.Make(b.String()); bare != tag {
					if v, ok := t.get(bare, key); ok {
						return v, true
					}
				}
			}
		}
		tag = next
	}
}

func (t Table) get(tag language.Tag, key string) (string, bool) {
	m, ok := t[tag.String()]
	if !ok {
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

//go:embed resources.yaml
var defaultYAML []byte

var defaultTable = sync.OnceValue(func() Table {
	t, err := parseYAML(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("locale: embedded resources: %v", err))
	}
	return t
})

// Default returns the built-in resources: English names for the root locale
// plus Japanese and Chinese names and the Japanese era table.
func Default() Table {
	return defaultTable()
}

// LoadYAML reads a resource document.  The top level maps language tags to
// entries; scalar entries are stored as is, sequences and nested mappings are
// flattened into dotted keys with 1-based list indices:
//
//	ja:
//	  month.short: [1月, 2月, …]        # month.short.1 … month.short.12
//	  era:
//	    - {start: "1989-01-08", name: 平成} # era.1.start, era.1.name
func LoadYAML(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("locale: read resources: %w", err)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (Table, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("locale: parse resources: %w", err)
	}
	t := make(Table, len(doc))
	for name, node := range doc {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("locale: resources: tag %q: %w", name, err)
		}
		entries := make(map[string]string)
		if err := flatten("", &node, entries); err != nil {
			return nil, fmt.Errorf("locale: resources: %s: %w", name, err)
		}
		t[tag.String()] = entries
	}
	return t, nil
}

func flatten(prefix string, n *yaml.Node, out map[string]string) error {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("line %d: scalar without key", n.Line)
		}
		out[prefix] = n.Value
	case yaml.SequenceNode:
		for i, c := range n.Content {
			if err := flatten(join(strconv.Itoa(i+1)), c, out); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := flatten(join(n.Content[i].Value), n.Content[i+1], out); err != nil {
				return err
			}
		}
	case yaml.AliasNode:
		return flatten(prefix, n.Alias, out)
	default:
		return fmt.Errorf("line %d: unsupported node", n.Line)
	}
	return nil
}
