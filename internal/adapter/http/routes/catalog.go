package routes

import (
	"gestao_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalogProducts  = "/catalog/products"
	PathCatalogLabor     = "/catalog/labor"
	PathCatalogTransport = "/catalog/transport"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	products := rg.Group(PathCatalogProducts)
	{
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.PATCH("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteEntry)
	}

	labor := rg.Group(PathCatalogLabor)
	{
		labor.POST("", catalogHandler.CreateLabor)
		labor.GET("", catalogHandler.ListLabor)
		labor.PATCH("/:id", catalogHandler.UpdateLabor)
		labor.DELETE("/:id", catalogHandler.DeleteEntry)
	}

	transport := rg.Group(PathCatalogTransport)
	{
		transport.POST("", catalogHandler.CreateTransport)
		transport.GET("", catalogHandler.ListTransport)
		transport.PATCH("/:id", catalogHandler.UpdateTransport)
		transport.DELETE("/:id", catalogHandler.DeleteEntry)
	}
}
