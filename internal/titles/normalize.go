// Package titles canonicalizes job titles by removing seniority and grade markers.
package titles

import (
	"regexp"
	"strings"
)

// Mode selects how aggressively markers are removed
type Mode int

const (
	// Suffix removes a single "Sr" or Roman-numeral marker at the end of the title.
	Suffix Mode = iota
	// Strict removes every "Sr" and delimited Roman-numeral marker anywhere in the title.
	Strict
)

// ParseMode maps the --strict flag to a Mode.
func ParseMode(strict bool) Mode {
	if strict {
		return Strict
	}
	return Suffix
}

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	default:
		return "suffix"
	}
}

// Roman numeral grammar, thousands through units with subtractive pairs.
// romanNumeral only matches non-empty numerals: each branch requires its
// leading place to be present, so "" never counts as a grade.
const (
	romanHundreds = `(?:C[MD]|D?C{0,3})`
	romanTens     = `(?:X[CL]|L?X{0,3})`
	romanUnits    = `(?:I[XV]|V?I{0,3})`

	romanNumeral = `(?:` +
		`M+` + romanHundreds + romanTens + romanUnits +
		`|(?:C[MD]|DC{0,3}|C{1,3})` + romanTens + romanUnits +
		`|(?:X[CL]|LX{0,3}|X{1,3})` + romanUnits +
		`|(?:I[XV]|VI{0,3}|I{1,3})` +
		`)`

	seniorMarker = `Sr`

	// suffixPattern: comma or space, optional extra spaces, then Sr or a numeral ending the title.
	suffixPattern = `(?:,| ) *(?:` + seniorMarker + `|` + romanNumeral + `)$`

	// strictPattern: Sr with an optional comma/space prefix, or a comma/space
	// delimited numeral followed by a space, dash, or the end of the title.
	strictPattern = `(?:,| )? *` + seniorMarker +
		`|(?:,| ) *` + romanNumeral + `(?:$|-| )`
)

var (
	suffixRe = regexp.MustCompile(suffixPattern)
	strictRe = regexp.MustCompile(strictPattern)
)

// Normalize returns the canonical form of title under mode.
// Titles without a marker come back unchanged apart from trailing spaces.
func Normalize(title string, mode Mode) string {
	title = trimTrailing(title)
	if title == "" {
		return title
	}

	if mode == Strict {
		return stripAll(title)
	}
	return stripSuffix(title)
}

// stripSuffix truncates at the first trailing marker. One truncation only.
func stripSuffix(title string) string {
	loc := suffixRe.FindStringIndex(title)
	if loc == nil {
		return title
	}
	return trimTrailing(title[:loc[0]])
}

// stripAll replaces each marker with a single space until none remain.
// Every match spans at least two bytes, so each pass shortens the title
// and the loop ends.
func stripAll(title string) string {
	for loc := strictRe.FindStringIndex(title); loc != nil; loc = strictRe.FindStringIndex(title) {
		title = trimTrailing(title[:loc[0]] + " " + title[loc[1]:])
	}
	return title
}

func trimTrailing(s string) string {
	return strings.TrimRight(s, " ")
}
