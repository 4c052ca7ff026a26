package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Specification struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Slug           string             `bson:"slug" json:"slug"`
	Category       string             `bson:"category" json:"category"`
	Price          float64            `bson:"price" json:"price"`
	Discount       float64            `bson:"discount" json:"discount"`
	Stock          int                `bson:"stock" json:"stock"`
	Images         []string           `bson:"images" json:"images"`
	Description    string             `bson:"description" json:"description"`
	Specifications []Specification    `bson:"specifications" json:"specifications"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Image returns the product's first image, the shape cart line items copy.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
