package apperr

import (
	"strconv"
	"strings"
)

const negativeNumbersPrefix = "Negative numbers: "

type ValidationError struct {
	Message   string
	Err       error
	Negatives []int
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewNegativeNumbers reports every negative number of a single input,
// in the order they appeared.
func NewNegativeNumbers(negatives []int) *ValidationError {
	parts := make([]string, len(negatives))
	for i, n := range negatives {
		parts[i] = strconv.Itoa(n)
	}

	return &ValidationError{
		Message:   negativeNumbersPrefix + strings.Join(parts, ","),
		Negatives: append([]int(nil), negatives...),
	}
}

// FormatError is returned when a token is not a base-10 integer.
type FormatError struct {
	Token    string
	Position int
	Err      error
}

func (e *FormatError) Error() string {
	msg := "invalid number " + strconv.Quote(e.Token) + " at position " + strconv.Itoa(e.Position)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func NewFormat(token string, position int, err error) *FormatError {
	return &FormatError{Token: token, Position: position, Err: err}
}

// HeaderError is returned for a custom delimiter header that does not
// match //<char>\n.
type HeaderError struct {
	Input  string
	Reason string
}

func (e *HeaderError) Error() string {
	return "malformed delimiter header: " + e.Reason
}

func NewHeader(input, reason string) *HeaderError {
	return &HeaderError{Input: input, Reason: reason}
}
