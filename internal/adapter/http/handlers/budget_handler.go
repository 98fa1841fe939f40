package handlers

import (
	"errors"
	"net/http"

	request "gestao_facil/internal/adapter/http/dto/request"
	response "gestao_facil/internal/adapter/http/dto/response"
	"gestao_facil/internal/domain/entities"
	"gestao_facil/internal/usecase"
	"gestao_facil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets (orçamentos) and for
// composing catalog entries into draft budget lines.

type BudgetHandler struct {
	usecase  usecase.IBudgetUseCase
	composer usecase.IComposerUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, composer usecase.IComposerUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc, composer: composer}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), usecase.BudgetInput{
		Name:       payload.Name,
		ClientID:   payload.ClientID,
		ClientName: payload.ClientName,
		ProjectID:  payload.ProjectID,
		Notes:      payload.Notes,
		Lines:      payload.ToLines(),
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// UpdateBudget patches status/notes/client/project. Line edits go through
// ReplaceBudgetLines so totals can never drift from the line collection.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	upd := usecase.BudgetUpdate{
		Notes:      payload.Notes,
		ClientID:   payload.ClientID,
		ClientName: payload.ClientName,
		ProjectID:  payload.ProjectID,
	}
	if payload.Status != nil {
		status := entities.BudgetStatus(*payload.Status)
		upd.Status = &status
	}

	b, err := h.usecase.UpdateFields(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) ReplaceBudgetLines(c *gin.Context) {
	var payload request.ReplaceLinesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateLines(c.Request.Context(), c.Param("id"), payload.ToLines())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) CloneBudget(c *gin.Context) {
	b, err := h.usecase.Clone(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBudgetSnapshot serves the report/export collaborator. By default it
// returns the client-facing sheet; internal=true adds the cost sheet fields.
func (h *BudgetHandler) GetBudgetSnapshot(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	internal := c.Query("internal") == "true"
	c.JSON(http.StatusOK, response.FromBudgetSnapshot(snap, internal))
}

func (h *BudgetHandler) ComposeLine(c *gin.Context) {
	var payload request.ComposeLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	line, err := h.composer.Compose(
		c.Request.Context(),
		entities.CatalogType(payload.SourceType),
		payload.SourceItemID,
		payload.Quantity,
		payload.MarginPercent,
	)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	line.GroupLabel = payload.GroupLabel
	c.JSON(http.StatusCreated, response.FromBudgetLine(line))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetName),
		errors.Is(err, usecase.ErrEmptyBudgetLines),
		errors.Is(err, usecase.ErrInvalidBudgetStatus),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidCatalogType),
		errors.Is(err, usecase.ErrInvalidCatalogID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
