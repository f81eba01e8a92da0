// Copyright 2026, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package utilfn

import (
	"strings"
	"unicode"
)

// CamelToKebab converts "backfaceVisibility" to "backface-visibility".
// strings that already contain a dash are returned unchanged.
func CamelToKebab(s string) string {
	if strings.Contains(s, "-") {
		return s
	}
	var buf strings.Builder
	for _, ch := range s {
		if unicode.IsUpper(ch) {
			// leading uppercase is a vendor prefix (WebkitAnimation => -webkit-animation)
			buf.WriteByte('-')
			buf.WriteRune(unicode.ToLower(ch))
			continue
		}
		buf.WriteRune(ch)
	}
	return buf.String()
}

// KebabToCamel converts "backface-visibility" to "backfaceVisibility".
// custom properties ("--foo") are returned unchanged.
func KebabToCamel(s string) string {
	if strings.HasPrefix(s, "--") || !strings.Contains(s, "-") {
		return s
	}
	parts := strings.Split(s, "-")
	var buf strings.Builder
	for idx, part := range parts {
		if part == "" {
			continue
		}
		if idx == 0 || buf.Len() == 0 {
			buf.WriteString(part)
			continue
		}
		buf.WriteString(strings.ToUpper(part[:1]))
		buf.WriteString(part[1:])
	}
	return buf.String()
}

func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
