// Package natural orders strings the way people read them: runs of
// digits compare by numeric value, so "item2" sorts before "item10".
package natural

import "strings"

// Compare returns a negative number when a sorts before b, zero when
// they are identical, and a positive number otherwise.
//
// Strings are compared run by run, where a run is a maximal sequence
// of digits or of non-digits. Two digit runs compare by magnitude,
// whatever their length, and numerically equal runs with different
// leading zeros (e.g. "01" and "1") are ordered bytewise. Any other
// pair of runs is ordered bytewise. The result is a total order that
// only returns zero for equal strings.
func Compare(a, b string) int {
	for a != "" && b != "" {
		ra, rb := run(a), run(b)

		var c int
		if isDigit(ra[0]) && isDigit(rb[0]) {
			c = compareDigits(ra, rb)
		} else {
			c = strings.Compare(ra, rb)
		}
		if c != 0 {
			return c
		}

		a, b = a[len(ra):], b[len(rb):]
	}

	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// run returns the leading run of s, which must not be empty.
func run(s string) string {
	digits := isDigit(s[0])
	idx := 1
	for idx < len(s) && isDigit(s[idx]) == digits {
		idx++
	}
	return s[:idx]
}

// compareDigits orders two digit runs by value without parsing them,
// so runs of any length compare correctly.
func compareDigits(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}

	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
