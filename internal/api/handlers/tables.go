package handlers

import (
	"net/http"

	"household-calc/internal/model"

	"github.com/gin-gonic/gin"
)

// TablesHandler exposes the loaded reference tables read-only, for client
// display and debugging.
type TablesHandler struct {
	tax    *model.TaxTable
	budget *model.BudgetTable
}

// NewTablesHandler creates a new reference table handler
func NewTablesHandler(taxTable *model.TaxTable, budgetTable *model.BudgetTable) *TablesHandler {
	return &TablesHandler{tax: taxTable, budget: budgetTable}
}

// GetStateTax handles GET /state_tax
func (h *TablesHandler) GetStateTax(c *gin.Context) {
	c.JSON(http.StatusOK, h.tax)
}

// GetBudgetTable handles GET /api/budget_table
func (h *TablesHandler) GetBudgetTable(c *gin.Context) {
	c.JSON(http.StatusOK, h.budget)
}
