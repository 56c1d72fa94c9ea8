package mongodb

import (
	"somon-ai/internal/core/domain"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type categoryDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Slug          string             `bson:"slug"`
	NameRu        string             `bson:"nameRu"`
	NameTj        string             `bson:"nameTj"`
	NameEn        string             `bson:"nameEn"`
	DescriptionRu string             `bson:"descriptionRu,omitempty"`
	DescriptionTj string             `bson:"descriptionTj,omitempty"`
	DescriptionEn string             `bson:"descriptionEn,omitempty"`
	Icon          string             `bson:"icon,omitempty"`
	DisplayOrder  int                `bson:"displayOrder"`
	IsActive      bool               `bson:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d categoryDocument) toDomain() domain.Category {
	return domain.Category{
		ID:           d.ID.Hex(),
		Slug:         d.Slug,
		Name:         domain.NewLocalizedString(d.NameRu, d.NameTj, d.NameEn),
		Description:  domain.NewLocalizedString(d.DescriptionRu, d.DescriptionTj, d.DescriptionEn),
		Icon:         d.Icon,
		DisplayOrder: d.DisplayOrder,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func newCategoryDocument(c domain.Category) (categoryDocument, error) {
	doc := categoryDocument{
		Slug:          c.Slug,
		NameRu:        c.Name.Ru,
		NameTj:        c.Name.Tj,
		NameEn:        c.Name.En,
		DescriptionRu: c.Description.Ru,
		DescriptionTj: c.Description.Tj,
		DescriptionEn: c.Description.En,
		Icon:          c.Icon,
		DisplayOrder:  c.DisplayOrder,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.ID != "" {
		id, err := primitive.ObjectIDFromHex(c.ID)
		if err != nil {
			return categoryDocument{}, err
		}
		doc.ID = id
	}
	return doc, nil
}

type productFileDocument struct {
	FileName      string    `bson:"fileName"`
	FilePath      string    `bson:"filePath"`
	FileSizeBytes int64     `bson:"fileSizeBytes"`
	MimeType      string    `bson:"mimeType"`
	FileType      string    `bson:"fileType"`
	DisplayOrder  int       `bson:"displayOrder"`
	UploadedAt    time.Time `bson:"uploadedAt"`
}

type productDocument struct {
	ID            primitive.ObjectID    `bson:"_id,omitempty"`
	CategoryID    primitive.ObjectID    `bson:"categoryId"`
	Title         string                `bson:"title"`
	Description   string                `bson:"description"`
	Price         primitive.Decimal128  `bson:"price"`
	Status        int                   `bson:"status"`
	Files         []productFileDocument `bson:"files"`
	DynamicFields map[string]string     `bson:"dynamicFields"`
	Location      string                `bson:"location,omitempty"`
	ContactPhone  string                `bson:"contactPhone,omitempty"`
	ViewCount     int64                 `bson:"viewCount"`
	IsAIGenerated bool                  `bson:"isAiGenerated"`
	CreatedAt     time.Time             `bson:"createdAt"`
	UpdatedAt     time.Time             `bson:"updatedAt"`
	PublishedAt   *time.Time            `bson:"publishedAt,omitempty"`
}

func newProductDocument(p domain.Product) (productDocument, error) {
	categoryID, err := primitive.ObjectIDFromHex(p.CategoryID)
	if err != nil {
		return productDocument{}, domain.ErrInvalidID
	}
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return productDocument{}, err
	}

	files := make([]productFileDocument, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, productFileDocument{
			FileName:      f.FileName,
			FilePath:      f.FilePath,
			FileSizeBytes: f.FileSizeBytes,
			MimeType:      f.MimeType,
			FileType:      string(f.FileType),
			DisplayOrder:  f.DisplayOrder,
			UploadedAt:    f.UploadedAt,
		})
	}

	dynamic := p.DynamicFields
	if dynamic == nil {
		dynamic = map[string]string{}
	}

	doc := productDocument{
		CategoryID:    categoryID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         price,
		Status:        int(p.Status),
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
	if p.ID != "" {
		id, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return productDocument{}, domain.ErrInvalidID
		}
		doc.ID = id
	}
	return doc, nil
}

func (d productDocument) toDomain() (domain.Product, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return domain.Product{}, err
	}

	files := make([]domain.ProductFile, 0, len(d.Files))
	for _, f := range d.Files {
		files = append(files, domain.ProductFile{
			FileName:      f.FileName,
			FilePath:      f.FilePath,
			FileSizeBytes: f.FileSizeBytes,
			MimeType:      f.MimeType,
			FileType:      domain.MediaKind(f.FileType),
			DisplayOrder:  f.DisplayOrder,
			UploadedAt:    f.UploadedAt.UTC(),
		})
	}

	var publishedAt *time.Time
	if d.PublishedAt != nil {
		t := d.PublishedAt.UTC()
		publishedAt = &t
	}

	return domain.Product{
		ID:            d.ID.Hex(),
		CategoryID:    d.CategoryID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Price:         price,
		Status:        domain.ProductStatus(d.Status),
		Files:         files,
		DynamicFields: d.DynamicFields,
		Location:      d.Location,
		ContactPhone:  d.ContactPhone,
		ViewCount:     d.ViewCount,
		IsAIGenerated: d.IsAIGenerated,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
		PublishedAt:   publishedAt,
	}, nil
}
