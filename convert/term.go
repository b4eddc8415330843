package convert

var termAliases = map[string]string{
	"sem":    "Semester",
	"elc":    "ELC Term",
	"tri":    "Trimester",
	"term":   "Term",
	"ol":     "Online Teaching Period",
	"melb":   "Melb Teaching Period",
	"fast":   "Fast Track",
	"pce":    "PCE Term",
	"summer": "Summer School",
	"winter": "Winter School",
}

// terms the upstream never numbers
var digitlessTerms = map[string]bool{
	"fast":   true,
	"summer": true,
	"winter": true,
}

// TermAlias expands short term names like "sem1" to the upstream's "Semester 1".
// Anything that isn't a known alias is returned unchanged, so "Semester 1" works too.
func TermAlias(alias string) string {
	if alias == "" {
		return alias
	}

	name, digit := alias, ""
	if last := alias[len(alias)-1]; last >= '0' && last <= '9' {
		name, digit = alias[:len(alias)-1], string(last)
	}

	long, ok := termAliases[name]
	if !ok {
		return alias
	}

	if digit != "" && !digitlessTerms[name] {
		return long + " " + digit
	}
	return long
}
