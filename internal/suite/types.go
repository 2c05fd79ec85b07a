package suite

import "github.com/DjordjeVuckovic/strcalc/internal/apperr"

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case is one input and its expected outcome: either Want or WantError is set.
type Case struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description,omitempty"`
	Input       string `yaml:"input"`
	Want        *int   `yaml:"want,omitempty"`
	WantError   string `yaml:"want_error,omitempty"`
	WantMessage string `yaml:"want_message,omitempty"`
}

var knownErrorKinds = map[string]bool{
	apperr.KindFormat:     true,
	apperr.KindValidation: true,
	apperr.KindHeader:     true,
}
