package dto

type GeneratePlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type PlanItemResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Time     int    `json:"time,omitempty"`
}
