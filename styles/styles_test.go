package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TsubasaBE/go-cellfmt/styles"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		custom string
		want   string
	}{
		{"general", 0, "", "General"},
		{"built-in", 14, "", "mm-dd-yy"},
		{"custom overrides built-in", 14, "yyyy", "yyyy"},
		{"custom id", 164, `0.0"kg"`, `0.0"kg"`},
		{"undefined custom id", 170, "", "General"},
		{"reserved id", 23, "", "General"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, styles.Resolve(tc.id, tc.custom))
		})
	}
}

func TestStyleTable(t *testing.T) {
	st := styles.StyleTable{
		{NumFmtID: 0},
		{NumFmtID: 22},
		{NumFmtID: 164, FormatStr: "yyyy-mm-dd"},
		{NumFmtID: 21, FormatStr: "0.00"},
	}
	assert.Equal(t, "General", st.Pattern(0))
	assert.Equal(t, "m/d/yy hh:mm", st.Pattern(1))
	assert.Equal(t, "yyyy-mm-dd", st.Pattern(2))
	assert.Equal(t, "General", st.Pattern(-1))
	assert.Equal(t, "General", st.Pattern(9))

	assert.False(t, st.IsDate(0))
	assert.True(t, st.IsDate(1))
	assert.False(t, st.IsDate(2), "custom patterns need the renderer")
	assert.False(t, st.IsDate(3), "redefined built-in")
	assert.False(t, st.IsDate(4))

	assert.Equal(t, "0.00", st.FmtStr(3))
	assert.Empty(t, st.FmtStr(7))
}

func TestIsBuiltInDate(t *testing.T) {
	for _, id := range []int{14, 18, 21, 22, 27, 36, 45, 47, 50, 58} {
		assert.True(t, styles.IsBuiltInDate(id), "%d", id)
	}
	for _, id := range []int{0, 4, 13, 23, 37, 44, 48, 49, 59, 164} {
		assert.False(t, styles.IsBuiltInDate(id), "%d", id)
	}
}
