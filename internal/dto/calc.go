package dto

import (
	"github.com/DjordjeVuckovic/strcalc/internal/calculator"
	"github.com/DjordjeVuckovic/strcalc/internal/history"
)

type AddRequest struct {
	Input *string `json:"input" example:"//;\n1;2"`
}

type AddResponse struct {
	Sum        int      `json:"sum" example:"3"`
	Numbers    []int    `json:"numbers"`
	Ignored    []int    `json:"ignored"`
	Delimiters []string `json:"delimiters"`
}

func NewAddResponse(res *calculator.Result) AddResponse {
	return AddResponse{
		Sum:        res.Sum,
		Numbers:    res.Numbers,
		Ignored:    res.Ignored,
		Delimiters: res.Delimiters,
	}
}

type HistoryResponse struct {
	Records []history.Record `json:"records"`
	Count   int              `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Negative numbers: -2"`
	Title string `json:"title,omitempty" example:"validation error"`
}
