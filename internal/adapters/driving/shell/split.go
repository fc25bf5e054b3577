package shell

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned by Split for a line with an open quote.
var ErrUnterminatedQuote = errors.New("shell: unterminated quote")

// Split breaks a line into words the way a POSIX shell does for simple commands.
// Single quotes keep everything literal, double quotes allow backslash escapes,
// and an empty quoted string is kept as an empty word.
func Split(line string) ([]string, error) {
	var (
		words   []string
		word    strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			word.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if escaped {
		word.WriteRune('\\')
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}
