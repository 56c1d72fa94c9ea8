package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus represents the publication state of a product
type ProductStatus int

const (
	ProductStatusDraft ProductStatus = iota
	ProductStatusPublished
	ProductStatusArchived
)

// Default and maximum page sizes of a product listing
const (
	DefaultProductPageSize = 20
	MaxProductPageSize     = 100
)

// ProductFile is a media file attached to a product
type ProductFile struct {
	FileName      string
	FilePath      string
	FileSizeBytes int64
	MimeType      string
	FileType      MediaKind
	DisplayOrder  int
	UploadedAt    time.Time
}

// Product is a marketplace listing
type Product struct {
	ID            string
	CategoryID    string
	Title         string
	Description   string
	Price         decimal.Decimal
	Status        ProductStatus
	Files         []ProductFile
	DynamicFields map[string]string
	Location      string
	ContactPhone  string
	ViewCount     int64
	IsAIGenerated bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PublishedAt   *time.Time
}

// ProductFileView is a product file as returned to clients
type ProductFileView struct {
	FileName      string    `json:"fileName"`
	FilePath      string    `json:"filePath"`
	FileURL       string    `json:"fileUrl"`
	FileSizeBytes int64     `json:"fileSizeBytes"`
	MimeType      string    `json:"mimeType"`
	FileType      MediaKind `json:"fileType"`
	DisplayOrder  int       `json:"displayOrder"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

// ProductDetail is a product with its localized category name
type ProductDetail struct {
	ID            string            `json:"id"`
	CategoryID    string            `json:"categoryId"`
	CategoryName  string            `json:"categoryName,omitempty"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	Status        ProductStatus     `json:"status"`
	Files         []ProductFileView `json:"files"`
	DynamicFields map[string]string `json:"dynamicFields"`
	Location      string            `json:"location,omitempty"`
	ContactPhone  string            `json:"contactPhone,omitempty"`
	ViewCount     int64             `json:"viewCount"`
	IsAIGenerated bool              `json:"isAiGenerated"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	PublishedAt   *time.Time        `json:"publishedAt,omitempty"`
}

// ProductListItem is the summary of a product used by listings
type ProductListItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Status       ProductStatus   `json:"status"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	Location     string          `json:"location,omitempty"`
	ViewCount    int64           `json:"viewCount"`
	CreatedAt    time.Time       `json:"createdAt"`
	PublishedAt  *time.Time      `json:"publishedAt,omitempty"`
}

// ProductFilter selects a page of published products
type ProductFilter struct {
	CategoryID string
	Skip       int
	Take       int
}

// Normalize clamps skip and take to their allowed range
func (f ProductFilter) Normalize() ProductFilter {
	if f.Skip < 0 {
		f.Skip = 0
	}
	switch {
	case f.Take <= 0:
		f.Take = DefaultProductPageSize
	case f.Take > MaxProductPageSize:
		f.Take = MaxProductPageSize
	}
	return f
}

// CreateProductInput carries the fields and files of a new product
type CreateProductInput struct {
	CategoryID    string
	Title         string
	Description   string
	Price         decimal.Decimal
	DynamicFields map[string]string
	Location      string
	ContactPhone  string
	IsAIGenerated bool
	Files         []*FileUpload
}

// Thumbnail returns the url of the first image by display order
func (p Product) Thumbnail() string {
	var first *ProductFile
	for i := range p.Files {
		f := &p.Files[i]
		if f.FileType != MediaKindImage {
			continue
		}
		if first == nil || f.DisplayOrder < first.DisplayOrder {
			first = f
		}
	}
	if first == nil {
		return ""
	}
	return PublicURL(first.FilePath)
}

// ListItem returns the listing summary of the product
func (p Product) ListItem() ProductListItem {
	return ProductListItem{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		Status:       p.Status,
		ThumbnailURL: p.Thumbnail(),
		Location:     p.Location,
		ViewCount:    p.ViewCount,
		CreatedAt:    p.CreatedAt,
		PublishedAt:  p.PublishedAt,
	}
}

// Detail returns the full view of the product, categoryName may be empty
func (p Product) Detail(categoryName string) ProductDetail {
	files := make([]ProductFileView, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, ProductFileView{
			FileName:      f.FileName,
			FilePath:      f.FilePath,
			FileURL:       PublicURL(f.FilePath),
			FileSizeBytes: f.FileSizeBytes,
			MimeType:      f.MimeType,
			FileType:      f.FileType,
			DisplayOrder:  f.DisplayOrder,
			UploadedAt:    f.UploadedAt,
		})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].DisplayOrder < files[j].DisplayOrder })

	dynamic := p.DynamicFields
	if dynamic == nil {
		dynamic = map[string]string{}
	}

	return ProductDetail{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		CategoryName:  categoryName,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Status:        p.Status,
		Files:         files,
		DynamicFields: dynamic,
		Location:      p.Location,
		ContactPhone:  p.ContactPhone,
		ViewCount:     p.ViewCount,
		IsAIGenerated: p.IsAIGenerated,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		PublishedAt:   p.PublishedAt,
	}
}
