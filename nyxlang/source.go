package nyxlang

import (
	"sort"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string

	lineStarts []int
}

func NewSource(name string, content string) *Source {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Source{
		Name:       name,
		Content:    content,
		Lines:      strings.Split(content, "\n"),
		lineStarts: starts,
	}
}

// Column returns the 1-based column of a byte offset.
func (s *Source) Column(offset int) int {
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		return 1
	}
	return offset - s.lineStarts[line] + 1
}

func (s *Source) Text(span Span) string {
	start := min(max(span.Start, 0), len(s.Content))
	end := min(max(span.End, start), len(s.Content))
	return s.Content[start:end]
}
