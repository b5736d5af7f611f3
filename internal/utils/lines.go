package utils

import "strings"

// CleanLines trims every line and drops the blank ones.
func CleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SplitLines turns a textarea value into cleaned lines.
func SplitLines(text string) []string {
	return CleanLines(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}
