package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Email     string                 `bson:"email" json:"email"`
	Password  string                 `bson:"password" json:"-"`
	Name      string                 `bson:"name" json:"name"`
	Phone     string                 `bson:"phone" json:"phone"`
	Address   map[string]interface{} `bson:"address" json:"address"`
	Role      string                 `bson:"role" json:"role"`
	IsBanned  bool                   `bson:"is_banned" json:"is_banned"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// Identity is the resolved caller passed from the auth gate into handlers
// and services. It never carries framework types.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
