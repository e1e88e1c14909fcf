package lineformat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether line is empty or contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Fields splits line on runs of whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}

// SplitFirstSpace splits line on the first ASCII space.
// hasRest is false when the line contains no space at all.
func SplitFirstSpace(line string) (head, rest string, hasRest bool) {
	head, rest, hasRest = strings.Cut(line, " ")
	return head, rest, hasRest
}

// SplitFieldsN splits line on whitespace runs into at most n fields.
// The last field holds the remainder of the line with its inner spacing
// preserved. Leading and trailing whitespace is dropped. n <= 0 means no
// limit.
func SplitFieldsN(line string, n int) []string {
	if n <= 0 {
		return strings.Fields(line)
	}

	s := strings.TrimSpace(line)
	var fields []string
	for s != "" {
		if len(fields) == n-1 {
			fields = append(fields, s)
			break
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			fields = append(fields, s)
			break
		}
		fields = append(fields, s[:end])
		s = strings.TrimLeftFunc(s[end:], unicode.IsSpace)
	}
	return fields
}

// Truncate bounds s to fewer than dataLength characters.
// Strings of dataLength or more runes keep their first dataLength-1 runes;
// shorter strings are returned unchanged. A dataLength below 1 yields "".
func Truncate(s string, dataLength int) string {
	if dataLength < 1 {
		return ""
	}
	if utf8.RuneCountInString(s) < dataLength {
		return s
	}
	keep := dataLength - 1
	for i := range s {
		if keep == 0 {
			return s[:i]
		}
		keep--
	}
	return s
}
