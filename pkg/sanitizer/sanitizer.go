package sanitizer

import (
	"regexp"
	"strings"
)

// scriptTagRegex matches a <script ...>...</script> block, case-insensitive,
// across newlines, with a non-greedy body.
var scriptTagRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)

// StripScriptTags removes every <script> block. Removal repeats until no block
// is left, so nested payloads such as "<scr<script></script>ipt>" cannot
// reassemble into a new tag.
func StripScriptTags(s string) string {
	for scriptTagRegex.MatchString(s) {
		s = scriptTagRegex.ReplaceAllString(s, "")
	}
	return s
}

// Text cleans a free-text field: trim, strip script blocks, trim again.
// Text(Text(s)) == Text(s) for every s.
func Text(s string) string {
	s = strings.TrimSpace(s)
	s = StripScriptTags(s)
	return strings.TrimSpace(s)
}

// Digits keeps only the ASCII digits of s (phone numbers)
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Email trims and lower-cases an email address
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Trim is used for enum-valued fields; validity is checked later
func Trim(s string) string {
	return strings.TrimSpace(s)
}
