package dto

// DsiCalculateRequest selects one district for an on-demand DSI calculation.
type DsiCalculateRequest struct {
	District string `json:"district" validate:"required,min=2"`
	State    string `json:"state" validate:"omitempty,min=2"`
}

// ListRequest bounds a top-N view.
type ListRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}
