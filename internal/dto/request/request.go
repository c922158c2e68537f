package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}

type CreateBookingRequest struct {
	CenterID string `json:"center_id" validate:"required,uuid4"`
	Slot     string `json:"slot" validate:"required,max=50"`
}

type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type UpdateQueueRequest struct {
	Queue *int `json:"queue" validate:"required,min=0"`
}

type UpdatePreferenceRequest struct {
	Key     string `json:"key" validate:"required,oneof=slotConfirmed queueAlmostDone centerStatus waitThreshold"`
	Enabled *bool  `json:"enabled" validate:"required"`
}

type UpdateThresholdRequest struct {
	Minutes int `json:"minutes" validate:"required,min=5,max=60"`
}
