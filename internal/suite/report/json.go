package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/strcalc/internal/suite"
)

func WriteJSON(r *suite.Result, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
