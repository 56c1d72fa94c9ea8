package domain

import "time"

// Category is a product category with texts in every supported language
type Category struct {
	ID           string
	Slug         string
	Name         LocalizedString
	Description  LocalizedString
	Icon         string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryView is a category rendered in a single language
type CategoryView struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryDetail exposes every language variant of a category
type CategoryDetail struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	NameRu        string    `json:"nameRu"`
	NameTj        string    `json:"nameTj"`
	NameEn        string    `json:"nameEn"`
	DescriptionRu string    `json:"descriptionRu,omitempty"`
	DescriptionTj string    `json:"descriptionTj,omitempty"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	DisplayOrder  int       `json:"displayOrder"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Localize renders the category in lang
func (c Category) Localize(lang Language) CategoryView {
	return CategoryView{
		ID:           c.ID,
		Slug:         c.Slug,
		Name:         c.Name.Get(lang),
		Description:  c.Description.Get(lang),
		Icon:         c.Icon,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// Detail returns the admin view of the category
func (c Category) Detail() CategoryDetail {
	return CategoryDetail{
		ID:            c.ID,
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
}
