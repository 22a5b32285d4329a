package core

import (
	"strings"
	"unicode/utf8"
)

// WrapText splits text into lines no wider than width, breaking on spaces.
// Words longer than width are split hard.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curLen = 0
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			if curLen > 0 {
				flush()
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		wl := utf8.RuneCountInString(word)
		if wl == 0 {
			continue
		}
		if curLen > 0 && curLen+1+wl > width {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wl
	}
	if curLen > 0 {
		flush()
	}
	return lines
}
