package wiki

import (
	"regexp"
	"strconv"
)

var (
	// yearRE finds a 4-digit year like 1998, 2006, 2023.
	yearRE = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	// parenDateRE finds a parenthetical that contains a year, since air
	// dates are usually written like "(December 17, 2006)".
	parenDateRE = regexp.MustCompile(`\(([^)]*\b(19\d{2}|20\d{2})\b[^)]*)\)`)
)

// ExtractYear pulls a year out of free text. It prefers a year inside the
// first qualifying parenthetical, which avoids picking up an unrelated
// year elsewhere in the sentence, and falls back to the first bare year
// anywhere in the text. The second return is false when no year exists;
// that is a normal outcome, not an error.
func ExtractYear(text string) (int, bool) {
	if m := parenDateRE.FindStringSubmatch(text); m != nil {
		if y := yearRE.FindString(m[1]); y != "" {
			return mustAtoi(y), true
		}
	}
	if y := yearRE.FindString(text); y != "" {
		return mustAtoi(y), true
	}
	return 0, false
}

// mustAtoi is safe here: the regexes only ever hand us 4 digits.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
