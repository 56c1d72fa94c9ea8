package product_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"somon-ai/internal/adapters/eventbroker"
	"somon-ai/internal/adapters/repository"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/port"
	"somon-ai/internal/core/service/media"
	"somon-ai/internal/core/service/product"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	categoryID = "659200000000000000000002"
	productID  = "659200000000000000000010"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	products   *repository.MockProductRepository
	categories *repository.MockCategoryRepository
	media      *media.MockMediaService
	events     *eventbroker.MockEventPublisher
	svc        port.ProductService
}

func newFixture() *fixture {
	f := &fixture{
		products:   repository.NewMockProductRepository(),
		categories: repository.NewMockCategoryRepository(),
		media:      media.NewMockMediaService(),
		events:     eventbroker.NewMockEventPublisher(),
	}
	f.svc = product.NewProductService(f.products, f.categories, f.media, f.events, time.Second, discardLogger)
	return f
}

func cars() *domain.Category {
	return &domain.Category{
		ID:       categoryID,
		Slug:     "cars",
		Name:     domain.NewLocalizedString("Автомобили", "Автомобилҳо", "Cars"),
		IsActive: true,
	}
}

func camry() *domain.Product {
	published := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Product{
		ID:         productID,
		CategoryID: categoryID,
		Title:      "Toyota Camry",
		Price:      decimal.RequireFromString("15000"),
		Status:     domain.ProductStatusPublished,
		Files: []domain.ProductFile{
			{FileName: "b.mp4", FilePath: "uploads/videos/b.mp4", FileType: domain.MediaKindVideo, DisplayOrder: 0},
			{FileName: "a.jpg", FilePath: "uploads/images/a.jpg", FileType: domain.MediaKindImage, DisplayOrder: 1},
		},
		CreatedAt:   published,
		PublishedAt: &published,
	}
}

func TestProductService_ListProducts(t *testing.T) {
	t.Run("filter is normalized", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("ListPublished", ctx, domain.ProductFilter{CategoryID: categoryID, Skip: 0, Take: 100}).
			Return([]domain.Product{*camry()}, nil)

		// Act
		result := f.svc.ListProducts(ctx, domain.ProductFilter{CategoryID: categoryID, Skip: -5, Take: 500})

		// Assert
		require.True(t, result.IsSuccess())
		require.Len(t, result.Value(), 1)
		assert.Equal(t, "/uploads/images/a.jpg", result.Value()[0].ThumbnailURL)
		f.products.AssertExpectations(t)
	})

	t.Run("default page size", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("ListPublished", ctx, domain.ProductFilter{Take: domain.DefaultProductPageSize}).
			Return([]domain.Product{}, nil)

		// Act
		result := f.svc.ListProducts(ctx, domain.ProductFilter{})

		// Assert
		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Value())
		f.products.AssertExpectations(t)
	})

	t.Run("malformed category id", func(t *testing.T) {
		// Arrange
		f := newFixture()

		// Act
		result := f.svc.ListProducts(context.Background(), domain.ProductFilter{CategoryID: "xyz"})

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
		assert.Equal(t, "Invalid category ID format: xyz", result.Err().Message)
		f.products.AssertNotCalled(t, "ListPublished", mock.Anything, mock.Anything)
	})

	t.Run("database error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("ListPublished", ctx, mock.Anything).Return(nil, assert.AnError)

		// Act
		result := f.svc.ListProducts(ctx, domain.ProductFilter{})

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindInternalServerError, result.Err().Kind)
		assert.Equal(t, "Database error while retrieving products", result.Err().Message)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	t.Run("found with localized category and view counted", func(t *testing.T) {
		// Arrange
		ctx, cancel := context.WithCancel(context.Background())
		f := newFixture()
		counted := make(chan error, 1)
		f.products.On("FindByID", ctx, productID).Return(camry(), nil)
		f.categories.On("FindByID", ctx, categoryID).Return(cars(), nil)
		f.products.On("IncrementViewCount", mock.Anything, productID).
			Run(func(args mock.Arguments) {
				counted <- args.Get(0).(context.Context).Err()
			}).
			Return(nil)

		// Act
		result := f.svc.GetProduct(ctx, productID, domain.LanguageEnglish)
		cancel()

		// Assert
		require.True(t, result.IsSuccess())
		detail := result.Value()
		assert.Equal(t, "Cars", detail.CategoryName)
		require.Len(t, detail.Files, 2)
		assert.Equal(t, "/uploads/videos/b.mp4", detail.Files[0].FileURL)

		select {
		case err := <-counted:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("view count not incremented")
		}
	})

	t.Run("view count failure does not fail the request", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		counted := make(chan struct{})
		f.products.On("FindByID", ctx, productID).Return(camry(), nil)
		f.categories.On("FindByID", ctx, categoryID).Return(nil, domain.ErrCategoryNotFound)
		f.products.On("IncrementViewCount", mock.Anything, productID).
			Run(func(mock.Arguments) { close(counted) }).
			Return(assert.AnError)

		// Act
		result := f.svc.GetProduct(ctx, productID, domain.LanguageRussian)

		// Assert
		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Value().CategoryName)
		select {
		case <-counted:
		case <-time.After(2 * time.Second):
			t.Fatal("view count not attempted")
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		// Arrange
		f := newFixture()

		// Act
		result := f.svc.GetProduct(context.Background(), "123", domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
		assert.Equal(t, "Invalid product ID format: 123", result.Err().Message)
	})

	t.Run("missing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("FindByID", ctx, productID).Return(nil, fmt.Errorf("product %s: %w", productID, domain.ErrProductNotFound))

		// Act
		result := f.svc.GetProduct(ctx, productID, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindNotFound, result.Err().Kind)
		assert.Equal(t, "Product with ID '"+productID+"' not found", result.Err().Message)
		f.products.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
	})

	t.Run("database error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("FindByID", ctx, productID).Return(nil, assert.AnError)

		// Act
		result := f.svc.GetProduct(ctx, productID, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, "Database error while retrieving product", result.Err().Message)
	})
}

func upload(name string) *domain.FileUpload {
	return &domain.FileUpload{FileName: name, Size: 10, Content: strings.NewReader("0123456789")}
}

func stored(name string, kind domain.MediaKind) domain.Result[domain.FileUploadOutcome] {
	dir := "uploads/images/"
	if kind == domain.MediaKindVideo {
		dir = "uploads/videos/"
	}
	return domain.Success(domain.FileUploadOutcome{
		StoredName:   name,
		RelativePath: dir + name,
		PublicURL:    "/" + dir + name,
		SizeBytes:    10,
		MimeType:     "application/octet-stream",
		MediaKind:    kind,
	})
}

func TestProductService_CreateProduct(t *testing.T) {
	input := func(files ...*domain.FileUpload) domain.CreateProductInput {
		return domain.CreateProductInput{
			CategoryID: categoryID,
			Title:      "Toyota Camry",
			Price:      decimal.RequireFromString("15000.50"),
			Location:   "Dushanbe",
			Files:      files,
		}
	}

	t.Run("files stored best effort", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		photo, doc, clip := upload("photo.jpg"), upload("doc.pdf"), upload("clip.mp4")

		f.categories.On("FindByID", ctx, categoryID).Return(cars(), nil)
		f.media.On("UploadMany", ctx, []*domain.FileUpload{photo, doc, clip}).Return([]domain.UploadItemOutcome{
			{FileName: "photo.jpg", Result: stored("1.jpg", domain.MediaKindImage)},
			{FileName: "doc.pdf", Result: domain.Failure[domain.FileUploadOutcome](domain.UnsupportedMediaType("Unsupported file type: .pdf"))},
			{FileName: "clip.mp4", Result: stored("2.mp4", domain.MediaKindVideo)},
		})

		var created *domain.Product
		f.products.On("Create", ctx, mock.AnythingOfType("*domain.Product")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.Product)
				created.ID = productID
			}).
			Return(nil)
		f.events.On("Publish", ctx, mock.MatchedBy(func(e domain.ProductEvent) bool {
			return e.Type == domain.EventTypeProductCreated && e.ProductID == productID && e.FileCount == 2
		})).Return(nil)

		// Act
		result := f.svc.CreateProduct(ctx, input(photo, doc, clip), domain.LanguageTajik)

		// Assert
		require.True(t, result.IsSuccess())
		detail := result.Value()
		assert.Equal(t, productID, detail.ID)
		assert.Equal(t, "Автомобилҳо", detail.CategoryName)
		assert.Equal(t, domain.ProductStatusPublished, detail.Status)
		assert.NotNil(t, detail.DynamicFields)
		require.Len(t, detail.Files, 2)
		assert.Equal(t, "uploads/images/1.jpg", detail.Files[0].FilePath)
		assert.Equal(t, 0, detail.Files[0].DisplayOrder)
		assert.Equal(t, "uploads/videos/2.mp4", detail.Files[1].FilePath)
		assert.Equal(t, 1, detail.Files[1].DisplayOrder)

		require.NotNil(t, created)
		require.NotNil(t, created.PublishedAt)
		assert.True(t, created.CreatedAt.Equal(*created.PublishedAt))
		f.media.AssertExpectations(t)
		f.media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
		f.events.AssertExpectations(t)
	})

	t.Run("publish failure is ignored", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.categories.On("FindByID", ctx, categoryID).Return(cars(), nil)
		f.products.On("Create", ctx, mock.Anything).Return(nil)
		f.events.On("Publish", ctx, mock.Anything).Return(assert.AnError)

		// Act
		result := f.svc.CreateProduct(ctx, input(), domain.LanguageRussian)

		// Assert
		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Value().Files)
		f.media.AssertNotCalled(t, "UploadMany", mock.Anything, mock.Anything)
	})

	t.Run("malformed category id", func(t *testing.T) {
		// Arrange
		f := newFixture()
		in := input()
		in.CategoryID = "nope"

		// Act
		result := f.svc.CreateProduct(context.Background(), in, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
		assert.Equal(t, "Invalid category ID format: nope", result.Err().Message)
	})

	t.Run("empty title", func(t *testing.T) {
		// Arrange
		f := newFixture()
		in := input()
		in.Title = " "

		// Act
		result := f.svc.CreateProduct(context.Background(), in, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
	})

	t.Run("category missing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.categories.On("FindByID", ctx, categoryID).Return(nil, domain.ErrCategoryNotFound)

		// Act
		result := f.svc.CreateProduct(ctx, input(upload("a.jpg")), domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindNotFound, result.Err().Kind)
		assert.Equal(t, "Category with ID '"+categoryID+"' not found", result.Err().Message)
		f.media.AssertNotCalled(t, "UploadMany", mock.Anything, mock.Anything)
	})

	t.Run("database error on insert", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.categories.On("FindByID", ctx, categoryID).Return(cars(), nil)
		f.products.On("Create", ctx, mock.Anything).Return(assert.AnError)

		// Act
		result := f.svc.CreateProduct(ctx, input(), domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindInternalServerError, result.Err().Kind)
		assert.Equal(t, "Database error while creating product", result.Err().Message)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("files deleted best effort then record", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("FindByID", ctx, productID).Return(camry(), nil)
		f.media.On("DeleteMany", ctx, []string{"uploads/videos/b.mp4", "uploads/images/a.jpg"}).Return([]domain.DeleteItemOutcome{
			{Path: "uploads/videos/b.mp4", Result: domain.FailureWithValue(domain.NotFound("File not found: uploads/videos/b.mp4"), false)},
			{Path: "uploads/images/a.jpg", Result: domain.Success(true)},
		})
		f.products.On("Delete", ctx, productID).Return(nil)
		f.events.On("Publish", ctx, mock.MatchedBy(func(e domain.ProductEvent) bool {
			return e.Type == domain.EventTypeProductDeleted && e.ProductID == productID
		})).Return(nil)

		// Act
		result := f.svc.DeleteProduct(ctx, productID)

		// Assert
		require.True(t, result.IsSuccess())
		assert.True(t, result.Value())
		f.products.AssertExpectations(t)
		f.media.AssertExpectations(t)
		f.events.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		// Arrange
		f := newFixture()

		// Act
		result := f.svc.DeleteProduct(context.Background(), "bad")

		// Assert
		require.False(t, result.IsSuccess())
		assert.False(t, result.Value())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
	})

	t.Run("missing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		f.products.On("FindByID", ctx, productID).Return(nil, domain.ErrProductNotFound)

		// Act
		result := f.svc.DeleteProduct(ctx, productID)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindNotFound, result.Err().Kind)
		f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("database error on delete", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := newFixture()
		p := camry()
		p.Files = nil
		f.products.On("FindByID", ctx, productID).Return(p, nil)
		f.products.On("Delete", ctx, productID).Return(assert.AnError)

		// Act
		result := f.svc.DeleteProduct(ctx, productID)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, "Database error while deleting product", result.Err().Message)
		f.media.AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
	})
}
