package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	maxKeyWidth    = 50
	paragraphWidth = 60
)

// Color returns an aurora instance that only emits escape codes when w is a terminal.
func Color(w io.Writer) aurora.Aurora {
	if f, ok := w.(*os.File); ok {
		return aurora.NewAurora(isTerminal(f))
	}
	return aurora.NewAurora(false)
}

func Bold(text string) string {
	return Color(os.Stdout).Bold(text).String()
}

func RedText(text string) aurora.Value {
	return Color(os.Stdout).Red(text)
}

func GreenText(text string) aurora.Value {
	return Color(os.Stdout).Green(text)
}

func BlueText(text string) aurora.Value {
	return Color(os.Stdout).Blue(text)
}

func YellowText(text string) aurora.Value {
	return Color(os.Stdout).Yellow(text)
}

func MagentaText(text string) aurora.Value {
	return Color(os.Stdout).Magenta(text)
}

func GrayText(text string) aurora.Value {
	return Color(os.Stdout).Gray(12, text)
}

func Heading(text string) string {
	return fmt.Sprintf("%s\n", Bold(text))
}

// KeyValues renders m as aligned "key: value" lines sorted by key.
func KeyValues(m map[string]string) string {
	keys := make([]string, 0, len(m))
	width := 0
	for k := range m {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	if width > maxKeyWidth {
		width = maxKeyWidth
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%-*s %s\n", width+1, k+":", m[k]))
	}
	return sb.String()
}

func UnorderedList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return sb.String()
}

func OrderedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d) %s\n", i+1, item))
	}
	return sb.String()
}

// Truncate shortens s to n characters, keeping both ends around "...".
func Truncate(s string, n int) string {
	if n >= len(s) {
		return s
	}
	left := (n - 3 + 1) / 2
	right := (n - 3) / 2
	if left < 1 {
		left = 1
	}
	if right < 1 {
		right = 1
	}
	return s[:left] + "..." + s[len(s)-right:]
}

// Paragraph wraps text on word boundaries.
func Paragraph(text string) string {
	var sb strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		switch {
		case lineLen == 0:
		case lineLen+1+len(word) > paragraphWidth:
			sb.WriteString("\n")
			lineLen = 0
		default:
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	if sb.Len() == 0 {
		return ""
	}
	sb.WriteString("\n")
	return sb.String()
}

func PrefixLines(text, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
