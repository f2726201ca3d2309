package locale_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-cellfmt/locale"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		lcid  uint32
		tag   string
		known bool
	}{
		{0x409, "en-US", true},
		{0x411, "ja-JP", true},
		{0x30411, "ja-JP", true}, // calendar bits above the low 16 are ignored
		{0x804, "zh-CN", true},
		{0xF800, "und", false},
	}
	for _, tc := range tests {
		id := locale.Lookup(tc.lcid)
		assert.Equal(t, tc.known, id.Known, "%X", tc.lcid)
		assert.Equal(t, tc.tag, id.Tag.String(), "%X", tc.lcid)
		assert.Equal(t, tc.lcid, id.LCID)
	}
}

func TestParseLCID(t *testing.T) {
	id, err := locale.ParseLCID("-411")
	require.NoError(t, err)
	assert.Equal(t, "ja", id.Language())

	_, err = locale.ParseLCID("zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locale: invalid LCID")
}

func TestDefaultNames(t *testing.T) {
	r := locale.Default()
	tests := []struct {
		tag  language.Tag
		key  string
		m    time.Month
		want string
	}{
		{language.AmericanEnglish, locale.KeyMonthShort, time.March, "Mar"},
		{language.AmericanEnglish, locale.KeyMonthLong, time.September, "September"},
		{language.AmericanEnglish, locale.KeyMonthLetter, time.December, "D"},
		{language.Japanese, locale.KeyMonthLong, time.March, "3月"},
		{language.MustParse("ja-JP"), locale.KeyMonthShort, time.November, "11月"},
		{language.German, locale.KeyMonthShort, time.May, "May"}, // falls back to root
		{language.MustParse("zh-TW"), locale.KeyMonthLong, time.March, "三月"},
		{language.MustParse("zh-HK"), locale.KeyMonthShort, time.July, "7月"},
		{language.TraditionalChinese, locale.KeyMonthLong, time.December, "十二月"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, locale.MonthName(r, tc.tag, tc.key, tc.m), "%s %s %s", tc.tag, tc.key, tc.m)
	}

	assert.Equal(t, "Wed", locale.WeekdayName(r, language.English, locale.KeyWeekdayShort, time.Wednesday))
	assert.Equal(t, "水曜日", locale.WeekdayName(r, language.Japanese, locale.KeyWeekdayLong, time.Wednesday))
	assert.Equal(t, "PM", locale.AmPm(r, language.AmericanEnglish, true))
	assert.Equal(t, "午前", locale.AmPm(r, language.Japanese, false))
	assert.Equal(t, "星期三", locale.WeekdayName(r, language.MustParse("zh-TW"), locale.KeyWeekdayLong, time.Wednesday))
	assert.Equal(t, "下午", locale.AmPm(r, language.MustParse("zh-TW"), true))
}

func TestLoadYAML(t *testing.T) {
	doc := `
und:
  ampm.am: morning
fr:
  month.short: [janv., févr.]
`
	r, err := locale.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "févr.", locale.MonthName(r, language.MustParse("fr-CA"), locale.KeyMonthShort, time.February))
	// Missing entries fall back to the built-in table.
	assert.Equal(t, "Mar", locale.MonthName(r, language.French, locale.KeyMonthShort, time.March))
	assert.Equal(t, "morning", locale.AmPm(r, language.French, false))

	_, err = locale.LoadYAML(strings.NewReader("not a tag!: {a: b}"))
	require.Error(t, err)
}

func TestEraOf(t *testing.T) {
	r := locale.Default()
	tests := []struct {
		date time.Time
		name string
		year int
	}{
		{time.Date(1989, 1, 7, 0, 0, 0, 0, time.UTC), "昭和", 64},
		{time.Date(1989, 1, 8, 0, 0, 0, 0, time.UTC), "平成", 1},
		{time.Date(2019, 4, 30, 23, 0, 0, 0, time.UTC), "平成", 31},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "令和", 6},
		{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), "明治", 33},
	}
	for _, tc := range tests {
		e, y, ok := locale.EraOf(r, language.Japanese, tc.date)
		require.True(t, ok)
		assert.Equal(t, tc.name, e.Name, "%s", tc.date)
		assert.Equal(t, tc.year, y, "%s", tc.date)
	}

	// Non-Japanese locales still resolve eras.
	e, _, ok := locale.EraOf(r, language.AmericanEnglish, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "R", e.Letter)

	_, _, ok = locale.EraOf(r, language.Japanese, time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
