package dto

import "main/model"

type AdvanceJourneyRequest struct {
	Upload *model.UploadInfo `json:"upload,omitempty"`
}

type JourneyResponse struct {
	ID        string                 `json:"id"`
	Current   string                 `json:"current"`
	Completed bool                   `json:"completed"`
	Uploads   []model.UploadInfo     `json:"uploads,omitempty"`
	Identify  *model.IdentifyResult  `json:"identify,omitempty"`
	Scope     []string               `json:"scope,omitempty"`
	OCR       *model.OCRResult       `json:"ocr,omitempty"`
	Diagnosis *model.DiagnosisResult `json:"diagnosis,omitempty"`
	Coaching  *model.CoachingPlan    `json:"coaching,omitempty"`
	Export    *model.ExportResult    `json:"export,omitempty"`
	Logs      []model.JourneyLog     `json:"logs,omitempty"`
}

func ToJourneyResponse(j *model.Journey) JourneyResponse {
	return JourneyResponse{
		ID:        j.JourneyID,
		Current:   string(j.Current),
		Completed: j.Completed,
		Uploads:   j.Uploads,
		Identify:  j.Identify,
		Scope:     j.Scope,
		OCR:       j.OCR,
		Diagnosis: j.Diagnosis,
		Coaching:  j.Coaching,
		Export:    j.Export,
		Logs:      j.Logs,
	}
}
