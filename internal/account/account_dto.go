package account

import "go-inspecta/internal/csvimport"

type CreateAccountRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Role     string `json:"role" binding:"required"`
	IsActive *bool  `json:"is_active"`

	// Permissions falls back to the role bundle when omitted.
	Permissions   *[]string `json:"permissions"`
	AllowedMenus  []string  `json:"allowed_menus"`
	AllowedPlants []string  `json:"allowed_plants"`
}

// UpdateAccountRequest leaves every nil field untouched. The username is
// immutable and taken from the path.
type UpdateAccountRequest struct {
	FullName      *string   `json:"full_name"`
	Role          *string   `json:"role"`
	IsActive      *bool     `json:"is_active"`
	Password      *string   `json:"password"`
	Permissions   *[]string `json:"permissions"`
	AllowedMenus  *[]string `json:"allowed_menus"`
	AllowedPlants *[]string `json:"allowed_plants"`
}

// BulkUpdateRequest applies each present field identically to every target.
type BulkUpdateRequest struct {
	Usernames     []string  `json:"usernames" binding:"required,min=1"`
	Permissions   *[]string `json:"permissions"`
	AllowedMenus  *[]string `json:"allowed_menus"`
	AllowedPlants *[]string `json:"allowed_plants"`
}

func (r BulkUpdateRequest) Empty() bool {
	return r.Permissions == nil && r.AllowedMenus == nil && r.AllowedPlants == nil
}

type BulkResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type ListQuery struct {
	Search   string `form:"q"`
	Scope    string `form:"scope"`
	Role     string `form:"role"`
	Status   string `form:"status"`
	SortBy   string `form:"sort_by"`
	Order    string `form:"order"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type ImportPreview struct {
	Rows     []csvimport.Row `json:"rows"`
	Errors   []string        `json:"errors"`
	// Existing lists NIKs that are already registered and would fail on import.
	Existing []string        `json:"existing"`
	Valid    bool            `json:"valid"`
}

type AccountResponse struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	FullName      string   `json:"full_name"`
	Role          string   `json:"role"`
	IsActive      bool     `json:"is_active"`
	Permissions   []string `json:"permissions"`
	AllowedMenus  []string `json:"allowed_menus"`
	AllowedPlants []string `json:"allowed_plants"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
