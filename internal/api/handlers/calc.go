package handlers

import (
	"errors"
	"net/http"

	"household-calc/internal/api/models"
	"household-calc/internal/borrow"
	"household-calc/internal/budget"
	"household-calc/internal/model"
	"household-calc/internal/plan"
	"household-calc/internal/tax"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalcHandler serves the calculation endpoints. It holds no per-request
// state and is shared by every request.
type CalcHandler struct {
	tax     *tax.Calculator
	budget  *budget.Allocator
	planner *plan.Planner
	logger  *zap.Logger
}

// NewCalcHandler creates a new calculation handler
func NewCalcHandler(taxCalc *tax.Calculator, alloc *budget.Allocator, logger *zap.Logger) *CalcHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalcHandler{
		tax:     taxCalc,
		budget:  alloc,
		planner: plan.NewPlanner(taxCalc, alloc),
		logger:  logger,
	}
}

// CalcTax handles POST /api/calc/tax
func (h *CalcHandler) CalcTax(c *gin.Context) {
	var req models.TaxRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.tax.Calc(taxInput(*req.AnnualIncome, req.FilingStatus, req.StateRate, req.StateCode))
	if err != nil {
		h.respondCalcError(c, "handlers.CalcTax", err)
		return
	}
	c.JSON(http.StatusOK, models.NewTaxResponse(res))
}

// CalcBudget handles POST /api/calc/budget
func (h *CalcHandler) CalcBudget(c *gin.Context) {
	var req models.BudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	// monthly_takehome is validated but does not affect the allocation
	adults, kids := household(req.Adults, req.Kids)
	c.JSON(http.StatusOK, models.NewBudgetResponse(h.budget.Allocate(adults, kids)))
}

// CalcBorrow handles POST /api/calc/borrow
func (h *CalcHandler) CalcBorrow(c *gin.Context) {
	var req models.BorrowRequest
	if !bindJSON(c, &req) {
		return
	}

	front, back, err := resolveRatios(req.Preset, req.FrontEndRatio, req.BackEndRatio)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	res := borrow.Calculate(borrow.Request{
		AnnualIncome:          *req.AnnualIncome,
		OtherMonthlyDebt:      req.OtherMonthlyDebt,
		RateAnnual:            *req.RateAnnual,
		TermYears:             req.TermYears,
		TaxesInsuranceMonthly: req.TaxesInsuranceMonthly,
		FrontEndRatio:         front,
		BackEndRatio:          back,
		UseTakehome:           req.UseTakehome,
		MonthlyTakehome:       req.MonthlyTakehome,
		SurplusLimit:          req.SurplusLimit,
	})
	c.JSON(http.StatusOK, models.NewBorrowResponse(res))
}

// CalcPlan handles POST /api/calc/plan
func (h *CalcHandler) CalcPlan(c *gin.Context) {
	var req models.PlanRequest
	if !bindJSON(c, &req) {
		return
	}

	front, back, err := resolveRatios(req.Preset, req.FrontEndRatio, req.BackEndRatio)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}
	adults, kids := household(req.Adults, req.Kids)

	res, err := h.planner.Run(plan.Input{
		Tax:    taxInput(*req.AnnualIncome, req.FilingStatus, req.StateRate, req.StateCode),
		Adults: adults,
		Kids:   kids,
		Borrow: borrow.Request{
			OtherMonthlyDebt:      req.OtherMonthlyDebt,
			RateAnnual:            *req.RateAnnual,
			TermYears:             req.TermYears,
			TaxesInsuranceMonthly: req.TaxesInsuranceMonthly,
			FrontEndRatio:         front,
			BackEndRatio:          back,
			UseTakehome:           req.UseTakehome,
		},
	})
	if err != nil {
		h.respondCalcError(c, "handlers.CalcPlan", err)
		return
	}
	c.JSON(http.StatusOK, models.NewPlanResponse(res))
}

// respondCalcError maps calculator errors. A ConfigError means the loaded
// reference data is broken, which is a server fault.
func (h *CalcHandler) respondCalcError(c *gin.Context, op string, err error) {
	_ = c.Error(err)
	var cfgErr *model.ConfigError
	if errors.As(err, &cfgErr) {
		h.logger.Error("reference data is missing an expected key",
			zap.String("op", op),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "CONFIG_ERROR", err.Error(), map[string]interface{}{
			"table": cfgErr.Table,
			"key":   cfgErr.Key,
		})
		return
	}
	respondError(c, http.StatusInternalServerError, "CALCULATION_ERROR", err.Error(), nil)
}

func taxInput(income float64, status string, stateRate *float64, stateCode *string) tax.Input {
	in := tax.Input{
		AnnualIncome: income,
		FilingStatus: model.FilingStatus(status),
		StateCode:    stateCode,
	}
	if stateRate != nil {
		in.StateRate = *stateRate
	}
	return in
}

func household(adults, kids *int) (int, int) {
	a, k := 1, 0
	if adults != nil {
		a = *adults
	}
	if kids != nil {
		k = *kids
	}
	return a, k
}

// resolveRatios starts from the named preset, if any, and lets explicit
// ratios override it.
func resolveRatios(preset string, front, back *float64) (float64, float64, error) {
	var f, b *float64
	if preset != "" {
		p, err := borrow.LookupPreset(preset)
		if err != nil {
			return 0, 0, err
		}
		f, b = &p.FrontEnd, &p.BackEnd
	}
	if front != nil {
		f = front
	}
	if back != nil {
		b = back
	}
	if f == nil || b == nil {
		return 0, 0, errors.New("front_end_ratio and back_end_ratio are required when no preset is given")
	}
	return *f, *b, nil
}
