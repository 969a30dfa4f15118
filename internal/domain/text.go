package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// anchorRe matches an HTML link whose text is "bug <number>".
	anchorRe = regexp.MustCompile(`(?i)<a\s[^>]*>\s*bug\s+(\d+)\s*</a>`)
	// bareNumberRe matches a run of 5+ digits not glued to a preceding word,
	// optionally already introduced by "bug".
	bareNumberRe = regexp.MustCompile(`(?i)(\bbug\s+)?\b(\d{5,})`)
	referenceRe  = regexp.MustCompile(`(?i)\bbug\s+(\d+)`)
)

// Normalize converts raw status content into a normalized text line:
// bug links are collapsed to their number, bare numbers of five or more
// digits are annotated as "bug N" and the first character is upper-cased.
func Normalize(content string) string {
	text := anchorRe.ReplaceAllString(content, "$1")
	text = annotateBareNumbers(text)
	return upperFirst(text)
}

func annotateBareNumbers(text string) string {
	matches := bareNumberRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		// m[2] >= 0 means the number is already preceded by "bug".
		if m[2] >= 0 {
			continue
		}
		b.WriteString(text[last:m[4]])
		b.WriteString("bug ")
		b.WriteString(text[m[4]:m[5]])
		last = m[5]
	}
	b.WriteString(text[last:])
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// ExtractIDs returns every issue id referenced as "bug N" in text, in order
// of occurrence. Duplicates are kept.
func ExtractIDs(text string) []string {
	matches := referenceRe.FindAllStringSubmatch(text, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// ExtractReferences applies ExtractIDs to every line and flattens the result.
func ExtractReferences(lines []string) []string {
	var ids []string
	for _, line := range lines {
		ids = append(ids, ExtractIDs(line)...)
	}
	return ids
}
