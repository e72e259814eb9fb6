package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/orders"
)

// OrderService is the ordering surface the order handlers need; satisfied
// by orders.Service.
type OrderService interface {
	Create(ctx context.Context, req orders.CreateOrderRequest) (models.Order, error)
	List(ctx context.Context, page, limit int64) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
}

// POST /orders
func CreateOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req orders.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		order, err := svc.Create(ctx, req)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		log.Printf("[%s] order %s created, total=%.2f items=%d", route, order.ID.Hex(), order.Total, len(order.Items))
		c.JSON(http.StatusCreated, order)
	}
}

/*
GET /orders
- most recent first
- pagination OPTIONAL: applied only when both page and limit are present
*/
func GetOrders(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		var page, limit int64
		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			var err error
			page, limit, err = parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := svc.List(ctx, page, limit)
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:id
func GetOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		order, err := svc.Get(ctx, c.Param("id"))
		if err != nil {
			respondWithDomainError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
