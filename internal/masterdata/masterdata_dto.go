package masterdata

type AreaRequest struct {
	Name         string `json:"name" binding:"required"`
	Plant        string `json:"plant" binding:"required"`
	DisplayOrder int    `json:"display_order" binding:"omitempty,min=0"`
	IsActive     *bool  `json:"is_active"`
}

type BagianRequest struct {
	AreaID       string  `json:"area_id" binding:"required,uuid"`
	Name         string  `json:"name" binding:"required"`
	Lines        []int64 `json:"lines"`
	DisplayOrder int     `json:"display_order" binding:"omitempty,min=0"`
}

type SupervisorRequest struct {
	Name         string `json:"name" binding:"required"`
	Plant        string `json:"plant" binding:"required"`
	DisplayOrder int    `json:"display_order" binding:"omitempty,min=0"`
	IsActive     *bool  `json:"is_active"`
}

type AreaResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Plant        string `json:"plant"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type BagianResponse struct {
	ID           string  `json:"id"`
	AreaID       string  `json:"area_id"`
	AreaName     string  `json:"area_name,omitempty"`
	Plant        string  `json:"plant,omitempty"`
	Name         string  `json:"name"`
	Lines        []int64 `json:"lines"`
	DisplayOrder int     `json:"display_order"`
}

type SupervisorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Plant        string `json:"plant"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// ListQuery is shared by the three master data lists. Filters that do not
// apply to a list are ignored.
type ListQuery struct {
	Search   string `form:"q"`
	Scope    string `form:"scope"`
	Plant    string `form:"plant"`
	AreaID   string `form:"area_id"`
	Status   string `form:"status"`
	SortBy   string `form:"sort_by"`
	Order    string `form:"order"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
