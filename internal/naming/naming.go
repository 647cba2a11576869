package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s at underscores, dropping empty words.
// Example: "__max__value_" -> ["max", "value"]
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
}

// IsUpper reports whether s has at least one letter and no lower case ones.
func IsUpper(s string) bool {
	letter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		letter = letter || unicode.IsLetter(r)
	}
	return letter
}

// ToCamelCase joins the words of s without separators, upper-casing the
// first letter of every word after the first. Words written entirely in
// upper case are folded to lower case first. The first word otherwise keeps
// its case, so a PascalCase start stays PascalCase.
// Example: "user_profile" -> "userProfile"
// Example: "MAX_value" -> "maxValue"
// Example: "My_Widget" -> "MyWidget"
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		if IsUpper(w) {
			w = lower.String(w)
		}
		if i > 0 {
			w = upperFirst(w)
		}
		b.WriteString(w)
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
