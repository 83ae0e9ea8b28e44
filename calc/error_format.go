package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// offsetPosition converts a byte offset into a 1-based line and column.
func offsetPosition(source string, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	line := 1 + strings.Count(source[:offset], "\n")
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1
	return line, offset - lineStart + 1
}

func formatCodeFrame(source string, offset int) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	line, column := offsetPosition(source, offset)
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[line-1], "\r")
	if column > len(lineText)+1 {
		column = len(lineText) + 1
	}

	lineLabel := strconv.Itoa(line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
