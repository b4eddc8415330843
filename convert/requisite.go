package convert

import (
	"regexp"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

// Unicode aware stand-ins for \s and \w. RE2 only knows the ASCII classes and upstream
// text carries non-breaking spaces and accented letters.
const (
	space = `[\s\v\p{Z}\x{1c}-\x{1f}\x{85}]`
	word  = `[\p{L}\p{N}_]`
)

// one or more uppercase words, whitespace, then a 4 digit catalog number with an optional suffix.
// RE2 has no lookbehind, so the leading word boundary is matched as start of text or a non-word rune.
var subjectPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])([A-Z]+(?:` + space + `+[A-Z]+)*)` + space + `+(\p{Nd}{4}` + word + `*)`)

// Requisite pulls "SUBJECT CODE" tokens out of free-text requisites.
// Returns nil when the text is empty or mentions no course codes.
func Requisite(raw string) *courseplanner.Requisite {
	if raw == "" {
		return nil
	}

	matches := subjectPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	subjects := make([]string, 0, len(matches))
	for _, m := range matches {
		subjects = append(subjects, m[1]+" "+m[2])
	}

	return &courseplanner.Requisite{Description: raw, Subjects: subjects}
}
