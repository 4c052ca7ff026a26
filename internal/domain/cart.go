package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a cart. Price is copied from the product at
// add time; later catalog price changes do not touch existing lines.
type CartItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
	Subtotal  float64 `bson:"subtotal" json:"subtotal"`
}

// Cart is keyed by the owning user's id (hex string), one document per
// user. Total always equals the sum of the line subtotals.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	Total     float64            `bson:"total" json:"total"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecomputeTotal rewrites the denormalized total from the line subtotals.
// Full recomputation guards against drift if a line was edited out of band.
func (c *Cart) RecomputeTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal
	}
	c.Total = total
}
