package main

import "strings"

const elision = "…"

// elideMiddle shortens text to at most limit runes by replacing the middle
// with an ellipsis, keeping the start and end. limit <= 0 disables it.
func elideMiddle(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	if limit == 1 {
		return elision
	}

	keep := limit - 1
	head := (keep + 1) / 2
	tail := keep - head

	var sb strings.Builder
	sb.WriteString(string(runes[:head]))
	sb.WriteString(elision)
	sb.WriteString(string(runes[len(runes)-tail:]))
	return sb.String()
}
