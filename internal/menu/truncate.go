package menu

import "unicode/utf8"

// MaxTitleLength is the longest title, in characters, shown in the previous-items submenu.
const MaxTitleLength = 30

// Ellipsis replaces the tail of a truncated title.
const Ellipsis = "…"

// TruncateTitle shortens s to MaxTitleLength characters, the last of which
// is Ellipsis when anything was cut.
func TruncateTitle(s string) string {
	if utf8.RuneCountInString(s) <= MaxTitleLength {
		return s
	}
	keep := MaxTitleLength - 1
	for i := range s {
		if keep == 0 {
			return s[:i] + Ellipsis
		}
		keep--
	}
	return s
}
