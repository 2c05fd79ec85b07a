package router

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/strcalc/internal/apperr"
	"github.com/DjordjeVuckovic/strcalc/internal/calculator"
	"github.com/DjordjeVuckovic/strcalc/internal/dto"
	"github.com/DjordjeVuckovic/strcalc/internal/history"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e       *echo.Echo
	adder   calculator.Adder
	history history.Store
}

func NewCalcRouter(e *echo.Echo, adder calculator.Adder, store history.Store) *CalcRouter {
	return &CalcRouter{
		e:       e,
		adder:   adder,
		history: store,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/add", r.addHandler)
	g.GET("/add", r.addQueryHandler)
	g.GET("/history", r.historyHandler)
}

// addHandler godoc
// @Summary Sum a delimited string of numbers
// @Description Splits the input on comma, newline and an optional //<char>\n delimiter, rejects negatives and ignores numbers above 1000.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.AddRequest true "Input to evaluate"
// @Success 200 {object} dto.AddResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/v1/add [post]
func (r *CalcRouter) addHandler(c echo.Context) error {
	var req dto.AddRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Input == nil {
		return apperr.NewValidation("input is required")
	}

	return r.evaluate(c, *req.Input)
}

// addQueryHandler godoc
// @Summary Sum a delimited string of numbers (query string form)
// @Tags calculator
// @Produce json
// @Param input query string true "Input to evaluate, URL encoded"
// @Success 200 {object} dto.AddResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/add [get]
func (r *CalcRouter) addQueryHandler(c echo.Context) error {
	if _, ok := c.QueryParams()["input"]; !ok {
		return apperr.NewValidation("input query parameter is required")
	}

	return r.evaluate(c, c.QueryParam("input"))
}

func (r *CalcRouter) evaluate(c echo.Context, input string) error {
	res, err := r.adder.Calculate(input)

	sum := 0
	if res != nil {
		sum = res.Sum
	}
	r.record(c.Request().Context(), history.NewRecord(input, sum, err))

	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewAddResponse(res))
}

func (r *CalcRouter) record(ctx context.Context, rec history.Record) {
	if err := r.history.Save(ctx, rec); err != nil {
		slog.Error("Failed to save history record", "id", rec.ID, "error", err)
	}
}

// historyHandler godoc
// @Summary List recent calculations
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of records (1-100)" default(20)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/history [get]
func (r *CalcRouter) historyHandler(c echo.Context) error {
	limit := history.DefaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive number")
		}
		limit = history.NormalizeLimit(n)
	}

	records, err := r.history.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{Records: records, Count: len(records)})
}
