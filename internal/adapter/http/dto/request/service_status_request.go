package request

type ServiceStatusUpdateRequest struct {
	Available *bool  `json:"available" binding:"required"`
	Message   string `json:"message"`
}
