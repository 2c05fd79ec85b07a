package suite

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if err := validateCase(c); err != nil {
			return nil, fmt.Errorf("case %q at index %d: %w", c.ID, i, err)
		}
	}

	return &s, nil
}

func validateCase(c *Case) error {
	switch {
	case c.Want != nil && c.WantError != "":
		return fmt.Errorf("want and want_error are mutually exclusive")
	case c.Want == nil && c.WantError == "":
		return fmt.Errorf("one of want or want_error is required")
	case c.WantError != "" && !knownErrorKinds[c.WantError]:
		return fmt.Errorf("unknown error kind %q", c.WantError)
	case c.WantMessage != "" && c.WantError == "":
		return fmt.Errorf("want_message requires want_error")
	}
	return nil
}
