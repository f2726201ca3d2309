// Package styles resolves the number format of a cell style: a numFmtId and
// an optional custom pattern.  It imports nothing from the renderer so that
// both numfmt and the workbook adapters can depend on it.
package styles

// FirstCustomID is the lowest numFmtId a workbook may define itself.
const FirstCustomID = 164

// XFStyle is the number-format half of one cell format (XF) record.
type XFStyle struct {
	// NumFmtID is the numFmtId of the record.  Values below FirstCustomID
	// are built-in formats unless the workbook redefines them.
	NumFmtID int
	// FormatStr is the pattern the workbook defines for NumFmtID, or "".
	FormatStr string
}

// Pattern returns the effective pattern of the style.
func (x XFStyle) Pattern() string {
	return Resolve(x.NumFmtID, x.FormatStr)
}

// StyleTable maps XF index → XFStyle.
type StyleTable []XFStyle

// Pattern returns the effective pattern of style index s, or "General" when
// s is out of range.
func (st StyleTable) Pattern(s int) string {
	if s < 0 || s >= len(st) {
		return "General"
	}
	return st[s].Pattern()
}

// IsDate reports whether the XF at index s uses one of the built-in date or
// time formats.  Custom patterns are not inspected; classify them with the
// renderer.
func (st StyleTable) IsDate(s int) bool {
	if s < 0 || s >= len(st) || st[s].FormatStr != "" {
		return false
	}
	return IsBuiltInDate(st[s].NumFmtID)
}

// FmtStr returns the raw format string for style index s, or an empty
// string when s is out of range.
func (st StyleTable) FmtStr(s int) string {
	if s < 0 || s >= len(st) {
		return ""
	}
	return st[s].FormatStr
}

// Resolve returns the effective pattern: custom when non-empty, the built-in
// pattern of id when there is one, "General" otherwise.
func Resolve(id int, custom string) string {
	if custom != "" {
		return custom
	}
	if s, ok := BuiltInNumFmt[id]; ok {
		return s
	}
	return "General"
}

// BuiltInNumFmt maps built-in numFmtId values to their canonical patterns
// (ECMA-376 §18.8.30).  IDs 27–36 and 50–58 are locale-specific CJK formats;
// the entries here are neutral Western fallbacks used when the workbook does
// not define the ID itself.
var BuiltInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `($#,##0_);($#,##0)`,
	6:  `($#,##0_);[Red]($#,##0)`,
	7:  `($#,##0.00_);($#,##0.00)`,
	8:  `($#,##0.00_);[Red]($#,##0.00)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "hh:mm",
	21: "hh:mm:ss",
	22: "m/d/yy hh:mm",
	// IDs 27–36: CJK date formats.
	27: "MM-DD-YYYY",
	28: "D-MMM-YY",
	29: "D-MMM-YY",
	30: "M/D/YY",
	31: "YYYY-M-D",
	32: "H:MM",
	33: "H:MM:SS",
	34: "H:MM AM/PM",
	35: "H:MM:SS AM/PM",
	36: "MM-DD-YYYY",
	37: `(#,##0_);(#,##0)`,
	38: `(#,##0_);[Red](#,##0)`,
	39: `(#,##0.00_);(#,##0.00)`,
	40: `(#,##0.00_);[Red](#,##0.00)`,
	41: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	42: `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	44: `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
	// IDs 50–58: CJK date formats, second set.
	50: "MM-DD-YYYY",
	51: "D-MMM-YY",
	52: "H:MM AM/PM",
	53: "H:MM:SS AM/PM",
	54: "D-MMM-YY",
	55: "H:MM AM/PM",
	56: "H:MM:SS AM/PM",
	57: "MM-DD-YYYY",
	58: "D-MMM-YY",
}

// IsBuiltInDate reports whether the built-in id is a date, time or datetime
// format.  Time-only IDs 18–21 and the elapsed/minute IDs 45–47 count.
func IsBuiltInDate(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}
