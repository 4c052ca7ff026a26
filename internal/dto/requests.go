package dto

type RegisterRequest struct {
	Email          string                 `json:"email" binding:"required,email"`
	Password       string                 `json:"password" binding:"required"`
	Name           string                 `json:"name"`
	Phone          string                 `json:"phone"`
	Address        map[string]interface{} `json:"address"`
	RecaptchaToken string                 `json:"recaptcha_token"`
}

type LoginRequest struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// AddCartItemRequest: a nil Quantity means the field was absent and
// defaults to 1; an explicit value is used as given, unvalidated.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// CreateOrderRequest carries the checkout payload. Items, shipping and
// payment are stored as submitted; totals are trusted from the client.
type CreateOrderRequest struct {
	Items       []map[string]interface{} `json:"items" binding:"required"`
	Shipping    map[string]interface{}   `json:"shipping" binding:"required"`
	Payment     map[string]interface{}   `json:"payment" binding:"required"`
	Subtotal    float64                  `json:"subtotal"`
	ShippingFee float64                  `json:"shippingFee"`
	Tax         float64                  `json:"tax"`
	Total       float64                  `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateProfileRequest uses pointers so that only fields present in the
// request body are written.
type UpdateProfileRequest struct {
	Name    *string                 `json:"name"`
	Phone   *string                 `json:"phone"`
	Address *map[string]interface{} `json:"address"`
}

type ProductRequest struct {
	Name           string               `json:"name" binding:"required"`
	Slug           string               `json:"slug"`
	Category       string               `json:"category"`
	Price          float64              `json:"price"`
	Discount       float64              `json:"discount"`
	Stock          int                  `json:"stock"`
	Images         []string             `json:"images"`
	Description    string               `json:"description"`
	Specifications []SpecificationEntry `json:"specifications"`
	IsActive       *bool                `json:"is_active"`
}

type SpecificationEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type BanUserRequest struct {
	Banned bool `json:"banned"`
}
