package dto

import "time"

// CreateCategoryRequest datos para crear una categoría. CreatedBy es obligatorio.
type CreateCategoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	OrgID            string `json:"orgId"`
	ParentCategoryID string `json:"parentCategoryId,omitempty"`
	CreatedBy        string `json:"createdBy"`
}

// UpdateCategoryRequest patch parcial de una categoría.
type UpdateCategoryRequest struct {
	ID               string  `json:"id"`
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	ParentCategoryID *string `json:"parentCategoryId,omitempty"`
}

// CategoryResponse proyección de una categoría.
type CategoryResponse struct {
	ID               string    `json:"id"`
	OrgID            string    `json:"orgId"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	ParentCategoryID string    `json:"parentCategoryId,omitempty"`
	CreatedBy        string    `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CategoryNode nodo del bosque de categorías (getCategoryHierarchy).
type CategoryNode struct {
	CategoryResponse
	Children []*CategoryNode `json:"children"`
}
