package routes

import (
	"gestao_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets     = "/budgets"
	PathBudgetLines = "/budget-lines"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id", budgetHandler.UpdateBudget)
		budgets.PUT("/:id/lines", budgetHandler.ReplaceBudgetLines)
		budgets.POST("/:id/clone", budgetHandler.CloneBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.GET("/:id/snapshot", budgetHandler.GetBudgetSnapshot)
	}

	lines := rg.Group(PathBudgetLines)
	{
		lines.POST("/compose", budgetHandler.ComposeLine)
	}
}
