package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"household-calc/internal/api/handlers"
	"household-calc/internal/api/middleware"
	"household-calc/internal/budget"
	"household-calc/internal/data"
	"household-calc/internal/tax"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the middleware and routes around the loaded reference
// tables. staticDir is served for non-API paths when it exists; pass "" to
// disable static serving.
func NewRouter(tables *data.Tables, staticDir string, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	calcHandler := handlers.NewCalcHandler(
		tax.NewCalculator(tables.Tax, logger),
		budget.NewAllocator(tables.Budget),
		logger,
	)
	tablesHandler := handlers.NewTablesHandler(tables.Tax, tables.Budget)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/state_tax", tablesHandler.GetStateTax)

	api := router.Group("/api")
	{
		api.GET("/budget_table", tablesHandler.GetBudgetTable)
		api.GET("/presets", handlers.ListPresets)

		calc := api.Group("/calc")
		calc.POST("/tax", calcHandler.CalcTax)
		calc.POST("/budget", calcHandler.CalcBudget)
		calc.POST("/borrow", calcHandler.CalcBorrow)
		calc.POST("/plan", calcHandler.CalcPlan)
	}

	router.NoRoute(noRoute(staticDir, logger))
	return router
}

// noRoute answers unknown API paths with a JSON 404 and everything else from
// staticDir, falling back to index.html for client-side routes.
func noRoute(staticDir string, logger *zap.Logger) gin.HandlerFunc {
	serveStatic := false
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			serveStatic = true
			logger.Info("serving static files", zap.String("op", "api.NewRouter"), zap.String("dir", staticDir))
		} else {
			logger.Info("static directory not found, skipping static file serving",
				zap.String("op", "api.NewRouter"),
				zap.String("dir", staticDir),
			)
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !serveStatic || path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Not found",
				},
			})
			return
		}

		file := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
