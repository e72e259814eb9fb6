package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem represents a single product entry within an order. Price and
// name are snapshots taken at order time and never track later upstream
// changes.
type OrderItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	ProductID   string             `bson:"productId" json:"productId"`
	Provider    Provider           `bson:"provider" json:"provider"`
	ProductName string             `bson:"productName" json:"productName"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Image       string             `bson:"image" json:"image"`
}

// OrderStatus is the lifecycle state of a persisted order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order defines the persisted order document. Items are embedded so the
// order and its lines share one write and one lifecycle.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	Total         float64            `bson:"total" json:"total"`
	Status        OrderStatus        `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	Items         []OrderItem        `bson:"items" json:"items"`
}
