package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Func styles a value. Strings pass through as is, anything else is coerced
// to its string form first. A nil value or an empty string yields "".
type Func func(v any) string

// Compose returns a Func that wraps its input in ESC[openCode m … ESC[closeCode m.
//
// Any close sequence already inside the input (from a nested style) is
// replaced with replace, re-opening this style after the inner one ends.
// An empty replace means the open sequence.
func Compose(openCode, closeCode int, replace string) Func {
	openSeq := sgr(openCode)
	closeSeq := sgr(closeCode)
	if replace == "" {
		replace = openSeq
	}
	// Scanning starts one byte past the length of the open sequence; a close
	// sequence before that offset is left untouched.
	at := len(openSeq) + 1

	return func(v any) string {
		s := coerce(v)
		if s == "" {
			return ""
		}
		i := indexFrom(s, closeSeq, at)
		if i < 0 {
			return openSeq + s + closeSeq
		}
		return openSeq + replaceClose(s, i, closeSeq, replace) + closeSeq
	}
}

// replaceClose replaces the close sequence at index i, and every later one,
// with replace.
func replaceClose(s string, i int, closeSeq, replace string) string {
	var b strings.Builder
	b.Grow(len(s) + len(replace))
	for i >= 0 {
		b.WriteString(s[:i])
		b.WriteString(replace)
		s = s[i+len(closeSeq):]
		i = strings.Index(s, closeSeq)
	}
	b.WriteString(s)
	return b.String()
}

func indexFrom(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], sub)
	if i < 0 {
		return -1
	}
	return from + i
}

func sgr(code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// coerce converts v to the string a style is applied to. fmt.Sprint calls
// String on Stringers and prints "<nil>" for nil receivers instead of
// panicking.
func coerce(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Plain is the Func used by disabled tables: it coerces v and adds nothing.
func Plain(v any) string {
	return coerce(v)
}
