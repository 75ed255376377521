package dto

type CreateBookingRequest struct {
	ResourceType  string `json:"resource_type" binding:"required"`
	ResourceID    string `json:"resource_id" binding:"required"`
	RequesterType string `json:"requester_type" binding:"required"`
	RequesterID   string `json:"requester_id" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Status        string `json:"status"`
}

type UpdateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ChangeStatusRequest struct {
	Status   string         `json:"status" binding:"required"`
	Reason   string         `json:"reason"`
	Metadata map[string]any `json:"metadata"`
}
