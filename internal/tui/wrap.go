// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes colors the sample against the typed runes. A negative
// cursorIndex means no attempt is active and nothing is highlighted.
func buildStyledRunes(targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	words := findWords(targetRunes)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		typed := i < len(inputRunes)
		if typed {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case inputRunes[i] == target:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		} else if target != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
			style = currentWordStyle
		}
		if i == cursorIndex && i >= len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	var words []wordRange
	for i := 0; i < len(targetRunes); {
		if targetRunes[i] == ' ' {
			i++
			continue
		}
		start := i
		for i < len(targetRunes) && targetRunes[i] != ' ' {
			i++
		}
		words = append(words, wordRange{start: start, end: i})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// token is a run of word runes, punctuation included, or a run of spaces.
type token struct {
	runes []styledRune
	width int
	space bool
}

func tokenize(runes []styledRune) []token {
	var tokens []token
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j].isSpace == runes[i].isSpace {
			j++
		}
		tokens = append(tokens, token{
			runes: runes[i:j],
			width: lineWidthOf(runes[i:j]),
			space: runes[i].isSpace,
		})
		i = j
	}
	return tokens
}

// wrapStyledRunes lays the sample out a word at a time. Spaces at a line
// break are dropped; a word is split only when it is wider than the line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	var line []styledRune
	lineWidth := 0
	emit := func() {
		lines = append(lines, renderStyledRunes(trimTrailingSpaces(line)))
		line = nil
		lineWidth = 0
	}

	for _, tok := range tokenize(runes) {
		if tok.space {
			if lineWidth+tok.width > width {
				if lineWidth > 0 {
					emit()
				}
				continue
			}
			line = append(line, tok.runes...)
			lineWidth += tok.width
			continue
		}
		if lineWidth > 0 && lineWidth+tok.width > width {
			emit()
		}
		rest := tok.runes
		for lineWidth+lineWidthOf(rest) > width {
			n := fitCount(rest, width-lineWidth)
			if n == 0 {
				if lineWidth > 0 {
					emit()
					continue
				}
				n = 1
			}
			line = append(line, rest[:n]...)
			rest = rest[n:]
			emit()
		}
		line = append(line, rest...)
		lineWidth += lineWidthOf(rest)
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, renderStyledRunes(line))
	}
	return strings.Join(lines, "\n")
}

func fitCount(runes []styledRune, avail int) int {
	used := 0
	for i, item := range runes {
		if used+item.width > avail {
			return i
		}
		used += item.width
	}
	return len(runes)
}

func trimTrailingSpaces(line []styledRune) []styledRune {
	end := len(line)
	for end > 0 && line[end-1].isSpace {
		end--
	}
	return line[:end]
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}
