package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/strcalc/internal/apperr"
)

const headerMarker = "//"

// Parsed is the outcome of splitting one input.
type Parsed struct {
	Delimiters DelimiterSet
	Custom     rune
	HasCustom  bool
	// Body is the input with the delimiter header removed.
	Body   string
	Tokens []string
}

// Split breaks input into numeric tokens. An empty input yields no tokens.
func Split(input string) ([]string, error) {
	p, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return p.Tokens, nil
}

// Parse strips an optional //<char>\n header and splits the remaining text
// on every delimiter of the active set. Consecutive delimiters produce an
// empty token.
func Parse(input string) (*Parsed, error) {
	p := &Parsed{
		Delimiters: DefaultDelimiters(),
		Body:       input,
	}

	if strings.HasPrefix(input, headerMarker) {
		custom, body, err := parseHeader(input)
		if err != nil {
			return nil, err
		}
		p.Custom = custom
		p.HasCustom = true
		p.Delimiters = p.Delimiters.With(custom)
		p.Body = body
	}

	if p.Body == "" {
		return p, nil
	}

	p.Tokens = splitOn(p.Body, p.Delimiters)
	return p, nil
}

func parseHeader(input string) (rune, string, error) {
	rest := input[len(headerMarker):]
	if rest == "" {
		return 0, "", apperr.NewHeader(input, "missing delimiter after //")
	}

	custom, size := utf8.DecodeRuneInString(rest)
	if custom == utf8.RuneError && size <= 1 {
		return 0, "", apperr.NewHeader(input, "delimiter is not valid UTF-8")
	}

	rest = rest[size:]
	if !strings.HasPrefix(rest, "\n") {
		return 0, "", apperr.NewHeader(input, "missing newline after delimiter")
	}

	return custom, rest[1:], nil
}

func splitOn(body string, delims DelimiterSet) []string {
	tokens := make([]string, 0, strings.Count(body, ",")+1)

	start := 0
	for i, r := range body {
		if delims.Contains(r) {
			tokens = append(tokens, body[start:i])
			start = i + utf8.RuneLen(r)
		}
	}

	return append(tokens, body[start:])
}
