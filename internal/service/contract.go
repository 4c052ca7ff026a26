package service

import (
	"context"
	"mime/multipart"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest, remoteIP string) (domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest, remoteIP string) (dto.LoginResponse, error)
}

type CatalogService interface {
	GetProducts(ctx context.Context, category string, limit int64) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
}

type CartService interface {
	// GetCart returns the user's cart, or an empty cart shape without
	// creating anything when none exists yet.
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
	AddItem(ctx context.Context, userID string, req dto.AddCartItemRequest) (domain.Cart, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (map[string]interface{}, error)
	// UpdateStatus drives the only end-user transition, pending to
	// cancelled, and returns the normalized updated order.
	UpdateStatus(ctx context.Context, userID, orderID, status string) (map[string]interface{}, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (domain.User, error)
}

type AdminService interface {
	CreateProduct(ctx context.Context, req dto.ProductRequest) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, req dto.CategoryRequest) (domain.Category, error)
	ListAllOrders(ctx context.Context, limit int64) ([]map[string]interface{}, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (map[string]interface{}, error)
	SetUserBanned(ctx context.Context, userID string, banned bool) error
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}
