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
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the three priced catalogs. Each
// catalog keeps its own routes and payload shape; the handler funnels them
// into the shared use case.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.create(c, entities.CatalogTypeProduct, usecase.CatalogInput{
		Name: payload.Name, Description: payload.Description,
		Cost: payload.BasePrice, MarginPercent: payload.MarginPercent,
	})
}

func (h *CatalogHandler) CreateLabor(c *gin.Context) {
	var payload request.LaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.create(c, entities.CatalogTypeLabor, usecase.CatalogInput{
		Name: payload.Name, Description: payload.Description,
		Cost: payload.ProviderValue, MarginPercent: payload.MarginPercent,
	})
}

func (h *CatalogHandler) CreateTransport(c *gin.Context) {
	var payload request.TransportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.create(c, entities.CatalogTypeTransport, usecase.CatalogInput{
		Name: payload.Name, Description: payload.Description,
		Cost: payload.BaseCost, MarginPercent: payload.MarginPercent,
	})
}

func (h *CatalogHandler) create(c *gin.Context, t entities.CatalogType, in usecase.CatalogInput) {
	e, err := h.usecase.Add(c.Request.Context(), t, in)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogEntry(e))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.update(c, usecase.CatalogUpdate{
		Name: payload.Name, Description: payload.Description,
		Cost: payload.BasePrice, MarginPercent: payload.MarginPercent,
	})
}

func (h *CatalogHandler) UpdateLabor(c *gin.Context) {
	var payload request.LaborUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.update(c, usecase.CatalogUpdate{
		Name: payload.Name, Description: payload.Description,
		Cost: payload.ProviderValue, MarginPercent: payload.MarginPercent,
	})
}

func (h *CatalogHandler) UpdateTransport(c *gin.Context) {
	var payload request.TransportUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	h.update(c, usecase.CatalogUpdate{
		Name: payload.Name, Description: payload.Description,
		Cost: payload.BaseCost, MarginPercent: payload.MarginPercent,
	})
}

func (h *CatalogHandler) update(c *gin.Context, upd usecase.CatalogUpdate) {
	e, err := h.usecase.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(e))
}

func (h *CatalogHandler) DeleteEntry(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.list(c, entities.CatalogTypeProduct)
}

func (h *CatalogHandler) ListLabor(c *gin.Context) {
	h.list(c, entities.CatalogTypeLabor)
}

func (h *CatalogHandler) ListTransport(c *gin.Context) {
	h.list(c, entities.CatalogTypeTransport)
}

func (h *CatalogHandler) list(c *gin.Context, t entities.CatalogType) {
	entries, err := h.usecase.List(c.Request.Context(), t)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogType),
		errors.Is(err, usecase.ErrInvalidCatalogID),
		errors.Is(err, usecase.ErrInvalidCatalogName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
