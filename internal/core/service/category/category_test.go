package category_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"somon-ai/internal/adapters/repository"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service/category"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const carsID = "659200000000000000000002"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func cars(active bool) *domain.Category {
	return &domain.Category{
		ID:           carsID,
		Slug:         "cars",
		Name:         domain.NewLocalizedString("Автомобили", "Автомобилҳо", "Cars"),
		Description:  domain.NewLocalizedString("Легковые", "Сабук", "Passenger"),
		Icon:         "🚗",
		DisplayOrder: 2,
		IsActive:     active,
	}
}

func TestCategoryService_ListCategories(t *testing.T) {
	t.Run("localized in request language", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("ListActive", ctx).Return([]domain.Category{*cars(true)}, nil)

		// Act
		result := svc.ListCategories(ctx, domain.LanguageEnglish)

		// Assert
		require.True(t, result.IsSuccess())
		require.Len(t, result.Value(), 1)
		assert.Equal(t, "Cars", result.Value()[0].Name)
		assert.Equal(t, "Passenger", result.Value()[0].Description)
		repo.AssertExpectations(t)
	})

	t.Run("empty list is a success", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("ListActive", ctx).Return([]domain.Category{}, nil)

		// Act
		result := svc.ListCategories(ctx, domain.LanguageRussian)

		// Assert
		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Value())
	})

	t.Run("database error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("ListActive", ctx).Return(nil, assert.AnError)

		// Act
		result := svc.ListCategories(ctx, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindInternalServerError, result.Err().Kind)
		assert.Equal(t, "Database error while retrieving categories", result.Err().Message)
	})
}

func TestCategoryService_GetCategory(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindByID", ctx, carsID).Return(cars(true), nil)

		// Act
		result := svc.GetCategory(ctx, carsID, domain.LanguageTajik)

		// Assert
		require.True(t, result.IsSuccess())
		assert.Equal(t, "Автомобилҳо", result.Value().Name)
	})

	t.Run("malformed id", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)

		// Act
		result := svc.GetCategory(context.Background(), "abc", domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
		assert.Equal(t, "Invalid category ID format: abc", result.Err().Message)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindByID", ctx, carsID).Return(nil, fmt.Errorf("category %s: %w", carsID, domain.ErrCategoryNotFound))

		// Act
		result := svc.GetCategory(ctx, carsID, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindNotFound, result.Err().Kind)
		assert.Equal(t, "Category with ID '"+carsID+"' not found", result.Err().Message)
	})

	t.Run("inactive is not found", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindByID", ctx, carsID).Return(cars(false), nil)

		// Act
		result := svc.GetCategory(ctx, carsID, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindNotFound, result.Err().Kind)
	})

	t.Run("database error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindByID", ctx, carsID).Return(nil, assert.AnError)

		// Act
		result := svc.GetCategory(ctx, carsID, domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindInternalServerError, result.Err().Kind)
		assert.Equal(t, "Database error while retrieving category", result.Err().Message)
	})
}

func TestCategoryService_GetCategoryBySlug(t *testing.T) {
	t.Run("slug is lowercased", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindBySlug", ctx, "cars").Return(cars(true), nil)

		// Act
		result := svc.GetCategoryBySlug(ctx, "CARS", domain.LanguageRussian)

		// Assert
		require.True(t, result.IsSuccess())
		assert.Equal(t, "Автомобили", result.Value().Name)
		repo.AssertExpectations(t)
	})

	t.Run("empty slug", func(t *testing.T) {
		// Arrange
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)

		// Act
		result := svc.GetCategoryBySlug(context.Background(), "  ", domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindBadRequest, result.Err().Kind)
		assert.Equal(t, "Category slug cannot be empty", result.Err().Message)
	})

	t.Run("missing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindBySlug", ctx, "boats").Return(nil, domain.ErrCategoryNotFound)

		// Act
		result := svc.GetCategoryBySlug(ctx, "boats", domain.LanguageRussian)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, domain.KindNotFound, result.Err().Kind)
		assert.Equal(t, "Category 'boats' not found", result.Err().Message)
	})
}

func TestCategoryService_GetCategoryDetail(t *testing.T) {
	t.Run("inactive category is returned", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindByID", ctx, carsID).Return(cars(false), nil)

		// Act
		result := svc.GetCategoryDetail(ctx, carsID)

		// Assert
		require.True(t, result.IsSuccess())
		detail := result.Value()
		assert.Equal(t, "Автомобили", detail.NameRu)
		assert.Equal(t, "Автомобилҳо", detail.NameTj)
		assert.Equal(t, "Cars", detail.NameEn)
		assert.False(t, detail.IsActive)
	})

	t.Run("database error", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := repository.NewMockCategoryRepository()
		svc := category.NewCategoryService(repo, discardLogger)
		repo.On("FindByID", ctx, carsID).Return(nil, assert.AnError)

		// Act
		result := svc.GetCategoryDetail(ctx, carsID)

		// Assert
		require.False(t, result.IsSuccess())
		assert.Equal(t, "Database error while retrieving category details", result.Err().Message)
	})
}
