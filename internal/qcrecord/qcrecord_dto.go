package qcrecord

import "encoding/json"

const dateLayout = "2006-01-02"

type CreateRecordRequest struct {
	Type           string          `json:"type" binding:"required"`
	Plant          string          `json:"plant" binding:"required"`
	Line           int             `json:"line" binding:"omitempty,min=1"`
	AreaID         string          `json:"area_id" binding:"omitempty,uuid"`
	BagianID       string          `json:"bagian_id" binding:"omitempty,uuid"`
	SupervisorID   string          `json:"supervisor_id" binding:"omitempty,uuid"`
	InspectionDate string          `json:"inspection_date" binding:"required"`
	Shift          int             `json:"shift" binding:"omitempty,min=1,max=3"`
	Result         string          `json:"result" binding:"required"`
	Notes          string          `json:"notes"`
	Payload        json.RawMessage `json:"payload"`
}

// UpdateRecordRequest changes the inspection outcome; where and when the
// inspection happened is fixed at creation.
type UpdateRecordRequest struct {
	Result  *string          `json:"result" binding:"omitempty,min=1"`
	Notes   *string          `json:"notes"`
	Payload *json.RawMessage `json:"payload"`
}

type ListQuery struct {
	Type     string `form:"type" binding:"required"`
	Plant    string `form:"plant"`
	Line     int    `form:"line" binding:"omitempty,min=1"`
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type RecordResponse struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Type           string          `json:"type"`
	Plant          string          `json:"plant"`
	Line           int             `json:"line,omitempty"`
	AreaID         string          `json:"area_id,omitempty"`
	BagianID       string          `json:"bagian_id,omitempty"`
	SupervisorID   string          `json:"supervisor_id,omitempty"`
	InspectionDate string          `json:"inspection_date"`
	Shift          int             `json:"shift,omitempty"`
	Result         string          `json:"result"`
	Notes          string          `json:"notes,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      string          `json:"created_at"`
}
