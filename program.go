package stream

import (
	"strings"

	"github.com/bobg/go-generics/v2/slices"
)

// ParseProgram normalizes raw G-code text into an ordered Program (spec.md
// §4.2):
//
//  1. Split on LF.
//  2. Strip any prior `N<digits>` prefix.
//  3. Remove inline `;` comments and parenthesized `(...)` spans.
//  4. Trim outer whitespace.
//  5. Drop empty rows.
//
// ParseProgram never fails on well-formed text: equal inputs always produce
// Programs with identical payload sequences, and stripping is idempotent on
// already-stripped text. Engine.Load wraps this and additionally resets
// cursors and retry state for the next run.
func ParseProgram(text string) *Program {
	normalized := slices.Map(strings.Split(text, "\n"), normalizeLine)

	lines := make([]ProgramLine, 0, len(normalized))
	for _, payload := range normalized {
		if payload == "" {
			continue
		}
		lines = append(lines, ProgramLine{Index: len(lines), Payload: payload})
	}

	return &Program{lines: lines}
}

func normalizeLine(raw string) string {
	line := stripLineNumberPrefix(raw)
	line = stripComments(line)
	return strings.TrimSpace(line)
}

// stripLineNumberPrefix removes a leading `N<digits>` token (the whitespace
// that follows it is left for normalizeLine's trim), so re-streaming an
// already-numbered program does not double up line numbers.
func stripLineNumberPrefix(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < 2 || (trimmed[0] != 'N' && trimmed[0] != 'n') {
		return line
	}

	i := 1
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i == 1 {
		// No digits followed the 'N', not a line-number prefix.
		return line
	}

	return trimmed[i:]
}

// stripComments removes everything from the first `;` to end-of-line and all
// non-nested `(...)` spans, consolidating the several subtly-different
// regexes the source used into one place (spec.md §9).
func stripComments(line string) string {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}

	var b strings.Builder
	depth := 0
	for _, r := range line {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
