package dto

// ─── Filter ──────────────────────────────────────────────────────────────────

type CategoryFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=15" validate:"min=1,max=200"`
}

// ─── Requests ────────────────────────────────────────────────────────────────

type CategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int64  `json:"product_count"`
	CreatedAt    string `json:"created_at"`
}

type CategoryListResponse struct {
	Data  []CategoryResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
