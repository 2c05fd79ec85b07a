package suite

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/strcalc/internal/apperr"
	"github.com/DjordjeVuckovic/strcalc/internal/calculator"
	"github.com/DjordjeVuckovic/strcalc/pkg/utils"
)

type CaseResult struct {
	ID     string `json:"id"`
	Input  string `json:"input"`
	Got    *int   `json:"got,omitempty"`
	Err    string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	PassRate float64 `json:"pass_rate"`
}

type Result struct {
	Name    string       `json:"name"`
	Cases   []CaseResult `json:"cases"`
	Summary Summary      `json:"summary"`
}

func (r *Result) OK() bool {
	return r.Summary.Failed == 0
}

type Runner struct {
	adder calculator.Adder
}

func NewRunner(adder calculator.Adder) *Runner {
	return &Runner{adder: adder}
}

func (r *Runner) Run(s *Suite) *Result {
	res := &Result{
		Name:  s.Name,
		Cases: make([]CaseResult, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		cr := r.runCase(c)
		res.Cases = append(res.Cases, cr)
		if cr.Passed {
			res.Summary.Passed++
		} else {
			res.Summary.Failed++
			slog.Debug("Case failed", "suite", s.Name, "case", c.ID, "reason", cr.Reason)
		}
	}

	res.Summary.Total = len(res.Cases)
	res.Summary.PassRate = utils.Percent(res.Summary.Passed, res.Summary.Total)

	slog.Info("Suite finished",
		"suite", s.Name,
		"total", res.Summary.Total,
		"passed", res.Summary.Passed,
		"failed", res.Summary.Failed)

	return res
}

func (r *Runner) runCase(c Case) CaseResult {
	cr := CaseResult{ID: c.ID, Input: c.Input}

	sum, err := r.adder.Add(c.Input)
	if err != nil {
		cr.Err = err.Error()
		cr.Kind = apperr.Kind(err)
	} else {
		cr.Got = &sum
	}

	if c.Want != nil {
		switch {
		case err != nil:
			cr.Reason = fmt.Sprintf("want %d, got %s error: %s", *c.Want, cr.Kind, cr.Err)
		case sum != *c.Want:
			cr.Reason = fmt.Sprintf("want %d, got %d", *c.Want, sum)
		default:
			cr.Passed = true
		}
		return cr
	}

	switch {
	case err == nil:
		cr.Reason = fmt.Sprintf("want %s error, got %d", c.WantError, sum)
	case cr.Kind != c.WantError:
		cr.Reason = fmt.Sprintf("want %s error, got %s error: %s", c.WantError, cr.Kind, cr.Err)
	case c.WantMessage != "" && cr.Err != c.WantMessage:
		cr.Reason = fmt.Sprintf("want message %q, got %q", c.WantMessage, cr.Err)
	default:
		cr.Passed = true
	}
	return cr
}
