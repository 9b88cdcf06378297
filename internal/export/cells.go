package export

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatScale renders a scale answer with the shortest text that parses back to the same float
func FormatScale(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseScale parses a scale cell
func ParseScale(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}

// FormatList renders items as one list literal cell: ['a', 'b', 'c'].
// Backslashes and single quotes inside items are escaped with a backslash.
func FormatList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		for _, r := range item {
			if r == '\\' || r == '\'' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// ParseList is the inverse of FormatList
func ParseList(cell string) ([]string, error) {
	s := strings.TrimSpace(cell)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w: %q is not bracketed", ErrMalformedList, cell)
	}
	s = strings.TrimSpace(s[1 : len(s)-1])

	items := []string{}
	for s != "" {
		if s[0] != '\'' {
			return nil, fmt.Errorf("%w: expected quote in %q", ErrMalformedList, cell)
		}

		var item strings.Builder
		i, closed := 1, false
		for i < len(s) {
			c := s[i]
			if c == '\\' && i+1 < len(s) {
				item.WriteByte(s[i+1])
				i += 2
				continue
			}
			if c == '\'' {
				closed = true
				i++
				break
			}
			item.WriteByte(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("%w: unterminated item in %q", ErrMalformedList, cell)
		}
		items = append(items, item.String())

		s = strings.TrimSpace(s[i:])
		if s == "" {
			break
		}
		if s[0] != ',' {
			return nil, fmt.Errorf("%w: expected comma in %q", ErrMalformedList, cell)
		}
		s = strings.TrimSpace(s[1:])
		if s == "" {
			return nil, fmt.Errorf("%w: trailing comma in %q", ErrMalformedList, cell)
		}
	}

	return items, nil
}
