package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"storefront/internal/models"
	"storefront/internal/orders"
	"storefront/internal/providers"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func ensureDBConnection(ctx context.Context, db *mongo.Database) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Client().Ping(checkCtx, readpref.Primary())
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondWithDomainError maps the error taxonomy to HTTP statuses. Upstream
// failures are logged in full but reported generically so provider internals
// never reach the client.
func respondWithDomainError(c *gin.Context, route string, err error) {
	var invalidProvider models.InvalidProviderError
	if errors.As(err, &invalidProvider) {
		respondWithError(c, http.StatusBadRequest, route, invalidProvider.Error())
		return
	}

	var invalidQuantity orders.InvalidQuantityError
	if errors.As(err, &invalidQuantity) {
		respondWithError(c, http.StatusBadRequest, route, invalidQuantity.Error())
		return
	}

	if errors.Is(err, orders.ErrEmptyCart) {
		respondWithError(c, http.StatusBadRequest, route, "cart is empty")
		return
	}

	var notFound providers.NotFoundError
	if errors.As(err, &notFound) {
		respondWithError(c, http.StatusNotFound, route, notFound.Error())
		return
	}

	if errors.Is(err, orders.ErrOrderNotFound) {
		respondWithError(c, http.StatusNotFound, route, "order not found")
		return
	}

	var upstream providers.UpstreamError
	if errors.As(err, &upstream) {
		log.Printf("[%s] upstream failure: %v", route, err)
		respondWithError(c, http.StatusBadGateway, route, "provider unavailable")
		return
	}

	var badPayload providers.BadPayloadError
	if errors.As(err, &badPayload) {
		log.Printf("[%s] upstream payload rejected: %v", route, err)
		respondWithError(c, http.StatusBadGateway, route, "provider returned malformed data")
		return
	}

	log.Printf("[%s] unexpected error: %v", route, err)
	respondWithError(c, http.StatusInternalServerError, route, "internal server error")
}
