package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

// CatalogService is the catalog surface the product handlers need;
// satisfied by catalog.Service.
type CatalogService interface {
	List(ctx context.Context, filter string) ([]models.Product, error)
	Get(ctx context.Context, provider, id string) (models.Product, error)
}

/*
GET /products?provider={all|brazilian|european}
- no filter or "all" → both providers, brazilian items first
- listing either fully succeeds or fully fails; no partial catalog
*/
func GetProducts(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		filter := strings.TrimSpace(c.Query("provider"))
		log.Printf("[%s] hit provider=%s", route, filter)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		products, err := svc.List(ctx, filter)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:provider/:id
func GetProduct(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:provider/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		product, err := svc.Get(ctx, c.Param("provider"), c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
