package service

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
	"medicare-backend/internal/presenter"
	"medicare-backend/internal/repository"
	"medicare-backend/pkg/errs"
)

const maxUploadBytes = 5 << 20

var allowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type AdminServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	uploadDir    string
}

func CreateAdminService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	uploadDir string,
) AdminService {
	return &AdminServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		uploadDir:    uploadDir,
	}
}

func (s *AdminServiceImpl) CreateProduct(ctx context.Context, req dto.ProductRequest) (domain.Product, error) {
	now := time.Now().UTC()

	product := domain.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Category:    req.Category,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Images:      req.Images,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Slug == "" {
		product.Slug = slugify(req.Name)
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	for _, spec := range req.Specifications {
		product.Specifications = append(product.Specifications, domain.Specification{Key: spec.Key, Value: spec.Value})
	}

	id, err := s.productRepo.Insert(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = id
	return product, nil
}

func (s *AdminServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) error {
	fields := bson.M{
		"name":        req.Name,
		"category":    req.Category,
		"price":       req.Price,
		"discount":    req.Discount,
		"stock":       req.Stock,
		"description": req.Description,
		"updatedAt":   time.Now().UTC(),
	}
	if req.Slug != "" {
		fields["slug"] = req.Slug
	}
	if req.Images != nil {
		fields["images"] = req.Images
	}
	if req.Specifications != nil {
		specs := make([]domain.Specification, 0, len(req.Specifications))
		for _, spec := range req.Specifications {
			specs = append(specs, domain.Specification{Key: spec.Key, Value: spec.Value})
		}
		fields["specifications"] = specs
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	return s.productRepo.Update(ctx, id, fields)
}

func (s *AdminServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	// No cascade: existing cart and order lines keep their snapshot of
	// the product.
	return s.productRepo.Delete(ctx, id)
}

func (s *AdminServiceImpl) CreateCategory(ctx context.Context, req dto.CategoryRequest) (domain.Category, error) {
	category := domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.categoryRepo.Insert(ctx, category)
	if err != nil {
		return domain.Category{}, err
	}
	category.ID = id
	return category, nil
}

func (s *AdminServiceImpl) ListAllOrders(ctx context.Context, limit int64) ([]map[string]interface{}, error) {
	docs, err := s.orderRepo.FindAllRaw(ctx, limit)
	if err != nil {
		return nil, err
	}

	orders := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, presenter.Order(doc))
	}
	return orders, nil
}

// UpdateOrderStatus is the elevated transition: any whitelisted status
// may be set regardless of the current one.
func (s *AdminServiceImpl) UpdateOrderStatus(ctx context.Context, orderID, status string) (map[string]interface{}, error) {
	status = strings.ToLower(status)
	allowed := false
	for _, candidate := range domain.AdminStatuses {
		if status == candidate {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errs.ErrUnknownStatus
	}

	doc, err := s.orderRepo.FindRawByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	objectID, _ := primitiveIDFromDoc(doc)
	if err := s.orderRepo.UpdateStatus(ctx, objectID, status, time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.FindRawByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return presenter.Order(updated), nil
}

func (s *AdminServiceImpl) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	return s.userRepo.Update(ctx, userID, bson.M{"is_banned": banned, "updatedAt": time.Now().UTC()})
}

func (s *AdminServiceImpl) Dashboard(ctx context.Context) (dto.DashboardResponse, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	recent, err := s.ListAllOrders(ctx, 5)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	return dto.DashboardResponse{
		Users:        users,
		Products:     products,
		Orders:       orders,
		RecentOrders: recent,
	}, nil
}

// UploadImage validates and stores a product asset, returning its
// public URL. The stored filename is random; the original name only
// contributes its extension.
func (s *AdminServiceImpl) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedImageExtensions[ext] {
		return "", errs.ErrUnsupportedFormat
	}

	if file.Size > maxUploadBytes {
		return "", errs.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedImageContentTypes[contentType] {
		return "", errs.ErrNotAnImage
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + "." + ext
	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/static/uploads/" + filename, nil
}

func primitiveIDFromDoc(doc bson.M) (primitive.ObjectID, bool) {
	id, ok := doc["_id"].(primitive.ObjectID)
	return id, ok
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
