package shell

import (
	"sort"
	"strings"
)

// Complete returns the candidates that start with line, sorted, and their
// longest common prefix. Matching ignores case and repeated spaces.
func Complete(line string, candidates []string) (matches []string, prefix string) {
	line = strings.ToLower(strings.Join(strings.Fields(line), " ")) + trailingSpace(line)
	for _, c := range candidates {
		if strings.HasPrefix(c, line) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return nil, ""
	}
	sort.Strings(matches)

	prefix = matches[0]
	for _, m := range matches[1:] {
		prefix = commonPrefix(prefix, m)
	}
	return matches, prefix
}

func trailingSpace(line string) string {
	if strings.TrimSpace(line) != "" && strings.HasSuffix(line, " ") {
		return " "
	}
	return ""
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
