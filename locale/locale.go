// Package locale resolves the locale ids a number format carries in
// [$-xxx] clauses and provides the locale-dependent names a date format
// renders: month and weekday names, AM/PM markers, quarters and Japanese
// eras.
//
// Names come from a [Resources] provider, a read-only key/value lookup keyed
// by language tag.  [Default] is backed by an embedded YAML document; callers
// may supply their own provider.
package locale

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// ID is a format locale decoded from a [$-xxx] or [$sym-xxx] clause.
type ID struct {
	// LCID is the value as written, including any calendar or numeral
	// system bits above the low 16.
	LCID uint32
	// Tag is the resolved language, language.Und when unknown.
	Tag language.Tag
	// Known reports whether the low 16 bits are in the locale table.
	Known bool
}

// String renders the id the way a pattern writes it.
func (id ID) String() string {
	if id.Known {
		return fmt.Sprintf("%s(%X)", id.Tag, id.LCID)
	}
	return fmt.Sprintf("unknown(%X)", id.LCID)
}

// Language returns the base language subtag ("ja"), or "" when unknown.
func (id ID) Language() string {
	if !id.Known {
		return ""
	}
	return Language(id.Tag)
}

// Language returns the base language subtag of tag.
func Language(tag language.Tag) string {
	b, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return b.String()
}

// lcidTags maps Windows LCIDs (MS-LCID) to BCP 47 tags.  Only the low 16 bits
// of a format's locale id select the language.
var lcidTags = map[uint16]string{
	0x0401: "ar-SA",
	0x0404: "zh-TW",
	0x0405: "cs-CZ",
	0x0406: "da-DK",
	0x0407: "de-DE",
	0x0408: "el-GR",
	0x0409: "en-US",
	0x040B: "fi-FI",
	0x040C: "fr-FR",
	0x040D: "he-IL",
	0x040E: "hu-HU",
	0x0410: "it-IT",
	0x0411: "ja-JP",
	0x0412: "ko-KR",
	0x0413: "nl-NL",
	0x0414: "nb-NO",
	0x0415: "pl-PL",
	0x0416: "pt-BR",
	0x0419: "ru-RU",
	0x041D: "sv-SE",
	0x041E: "th-TH",
	0x041F: "tr-TR",
	0x0421: "id-ID",
	0x042A: "vi-VN",
	0x0804: "zh-CN",
	0x0807: "de-CH",
	0x0809: "en-GB",
	0x080A: "es-MX",
	0x0816: "pt-PT",
	0x0C04: "zh-HK",
	0x0C07: "de-AT",
	0x0C09: "en-AU",
	0x0C0A: "es-ES",
	0x0C0C: "fr-CA",
	0x1004: "zh-SG",
	0x1009: "en-CA",
	0x1409: "en-NZ",
	0x4009: "en-IN",
}

// Lookup resolves an LCID.  Unknown ids come back with Known false and an
// undetermined tag rather than an error.
func Lookup(lcid uint32) ID {
	id := ID{LCID: lcid, Tag: language.Und}
	if s, ok := lcidTags[uint16(lcid&0xFFFF)]; ok {
		id.Tag = language.MustParse(s)
		id.Known = true
	}
	return id
}

// ParseLCID decodes the hexadecimal locale part of a clause ("411",
// "-411", "F800").
func ParseLCID(s string) (ID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "-")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ID{}, fmt.Errorf("locale: invalid LCID %q: %w", s, err)
	}
	return Lookup(uint32(v)), nil
}
