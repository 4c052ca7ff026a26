package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// AdminStatuses are the statuses the admin surface may set directly.
var AdminStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// Order is a checkout-time snapshot. Items, shipping and payment are
// stored verbatim as submitted; they are only reshaped on the way out,
// by the presenter.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID     string             `bson:"orderId" json:"orderId"`
	UserID      string             `bson:"userId" json:"userId"`
	Items       []bson.M           `bson:"items" json:"items"`
	Shipping    bson.M             `bson:"shipping" json:"shipping"`
	Payment     bson.M             `bson:"payment" json:"payment"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	ShippingFee float64            `bson:"shippingFee" json:"shippingFee"`
	Tax         float64            `bson:"tax" json:"tax"`
	Total       float64            `bson:"total" json:"total"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
