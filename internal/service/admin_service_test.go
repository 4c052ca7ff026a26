package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"medicare-backend/internal/dto"
	"medicare-backend/pkg/errs"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestAdminService(orderRepo *fakeOrderRepo, uploadDir string) AdminService {
	return CreateAdminService(newFakeProductRepo(), nil, orderRepo, newFakeUserRepo(), uploadDir)
}

func TestAdminUpdateOrderStatusWhitelist(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestAdminService(repo, t.TempDir())
	ctx := context.Background()

	id := repo.seed(bson.M{"userId": "user-1", "status": "cancelled"})

	// unlike the end-user transition, any whitelisted status is allowed
	// from any current state
	out, err := svc.UpdateOrderStatus(ctx, id.Hex(), "Shipped")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", out["status"])

	_, err = svc.UpdateOrderStatus(ctx, id.Hex(), "paid")
	assert.ErrorIs(t, err, errs.ErrUnknownStatus)

	_, err = svc.UpdateOrderStatus(ctx, "missing", "shipped")
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestAdminCreateProductDefaults(t *testing.T) {
	svc := newTestAdminService(newFakeOrderRepo(), t.TempDir())

	product, err := svc.CreateProduct(context.Background(), dto.ProductRequest{
		Name:     "Cough Syrup 100ml",
		Category: "respiratory",
		Price:    12.50,
	})
	require.NoError(t, err)

	assert.Equal(t, "cough-syrup-100ml", product.Slug)
	assert.True(t, product.IsActive)
	assert.NotNil(t, product.Images)
	assert.False(t, product.ID.IsZero())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "paracetamol-500mg", slugify("  Paracetamol   500mg "))
	assert.Equal(t, "vitamins", slugify("Vitamins"))
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadImageRejectsUnsupportedExtension(t *testing.T) {
	svc := newTestAdminService(newFakeOrderRepo(), t.TempDir())

	_, err := svc.UploadImage(context.Background(), makeFileHeader(t, "notes.txt", []byte("hello")))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestUploadImageRejectsMismatchedContent(t *testing.T) {
	svc := newTestAdminService(newFakeOrderRepo(), t.TempDir())

	_, err := svc.UploadImage(context.Background(), makeFileHeader(t, "fake.png", []byte("just plain text")))
	assert.ErrorIs(t, err, errs.ErrNotAnImage)
}

func TestUploadImageStoresUnderRandomName(t *testing.T) {
	dir := t.TempDir()
	svc := newTestAdminService(newFakeOrderRepo(), dir)

	content := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	url, err := svc.UploadImage(context.Background(), makeFileHeader(t, "product photo.png", content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "product photo")

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/static/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}
