package calculator

import (
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/strcalc/internal/apperr"
	"github.com/DjordjeVuckovic/strcalc/internal/splitter"
)

// MaxValue is the largest number that still counts towards the sum.
const MaxValue = 1000

// Adder is implemented by anything that can evaluate a calculator input.
type Adder interface {
	Add(input string) (int, error)
	Calculate(input string) (*Result, error)
}

// Result is the breakdown of one successful evaluation.
type Result struct {
	Sum        int      `json:"sum"`
	Numbers    []int    `json:"numbers"`
	Ignored    []int    `json:"ignored"`
	Delimiters []string `json:"delimiters"`
}

// Add returns the sum of the numbers in input.
func Add(input string) (int, error) {
	res, err := Calculate(input)
	if err != nil {
		return 0, err
	}
	return res.Sum, nil
}

// Calculate splits input, parses every token, rejects negative numbers and
// sums everything not above MaxValue.
func Calculate(input string) (*Result, error) {
	parsed, err := splitter.Parse(input)
	if err != nil {
		return nil, err
	}

	numbers, err := parseNumbers(parsed.Tokens)
	if err != nil {
		return nil, err
	}

	if err := validate(numbers); err != nil {
		return nil, err
	}

	res := &Result{
		Numbers:    numbers,
		Ignored:    []int{},
		Delimiters: parsed.Delimiters.Strings(),
	}
	for _, n := range numbers {
		if n > MaxValue {
			res.Ignored = append(res.Ignored, n)
			continue
		}
		res.Sum += n
	}

	return res, nil
}

func parseNumbers(tokens []string) ([]int, error) {
	numbers := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, apperr.NewFormat(tok, i, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func validate(numbers []int) error {
	var negatives []int
	for _, n := range numbers {
		if n < 0 {
			negatives = append(negatives, n)
		}
	}

	if len(negatives) > 0 {
		return apperr.NewNegativeNumbers(negatives)
	}
	return nil
}

// Calculator adapts the package functions to Adder. It keeps no per-call
// state, so one value can be shared between goroutines.
type Calculator struct {
	logger *slog.Logger
}

type Option func(*Calculator)

func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Add(input string) (int, error) {
	res, err := c.Calculate(input)
	if err != nil {
		return 0, err
	}
	return res.Sum, nil
}

func (c *Calculator) Calculate(input string) (*Result, error) {
	res, err := Calculate(input)
	if err != nil {
		c.logger.Debug("Calculation rejected", "input", input, "kind", apperr.Kind(err), "error", err)
		return nil, err
	}

	c.logger.Debug("Calculation done", "input", input, "sum", res.Sum, "ignored", len(res.Ignored))
	return res, nil
}
