package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"main/config"
)

// PlanItem is one scheduled block proposed by the planner.
type PlanItem struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Time     int    `json:"time,omitempty"` // minutes
}

// PlannerService turns a free-text prompt into schedule items via an optional
// LLM endpoint. Failures never surface to the caller as errors: any non-OK
// response or parse failure falls back to the built-in example plan.
type PlannerService struct {
	cfg    config.PlannerConfig
	client *http.Client
}

func NewPlannerService(cfg config.PlannerConfig) *PlannerService {
	return &PlannerService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type planResponse struct {
	Items []PlanItem `json:"items"`
}

// GeneratePlan tries the configured endpoint first, then the direct
// chat-completion path, then the fallback examples.
func (s *PlannerService) GeneratePlan(ctx context.Context, prompt string) []PlanItem {
	if s.cfg.Endpoint != "" {
		if items, err := s.callEndpoint(ctx, prompt); err == nil {
			return items
		} else {
			log.Printf("planner endpoint failed, falling back: %v", err)
		}
	}
	if s.cfg.OpenAIKey != "" {
		if items, err := s.callOpenAI(ctx, prompt); err == nil {
			return items
		} else {
			log.Printf("planner openai call failed, falling back: %v", err)
		}
	}
	return fallbackPlan()
}

func (s *PlannerService) callEndpoint(ctx context.Context, prompt string) ([]PlanItem, error) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner endpoint returned %d", resp.StatusCode)
	}

	var parsed planResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("planner endpoint returned no items")
	}
	return parsed.Items, nil
}

func (s *PlannerService) callOpenAI(ctx context.Context, prompt string) ([]PlanItem, error) {
	payload := map[string]any{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "system", "content": "You are a study and workout scheduler. Reply with JSON only."},
			{"role": "user", "content": prompt + `
Return 2-5 suggestions as: {"items":[{"category":"exam_prep|workout|etc","label":"schedule description, e.g. RC reading drill - 10:00 ~ 13:00"}]}`},
		},
		"temperature": 0.2,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion returned %d", resp.StatusCode)
	}

	var envelope struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if len(envelope.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	// The message content is itself JSON text in the plan shape.
	var parsed planResponse
	if err := json.Unmarshal([]byte(envelope.Choices[0].Message.Content), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("chat completion returned no items")
	}
	return parsed.Items, nil
}

func fallbackPlan() []PlanItem {
	return []PlanItem{
		{Category: "exam_prep", Label: "Daily RC speed-reading review - 10:00 ~ 13:00"},
		{Category: "exam_prep", Label: "LC 10-minute mini test per part - 10:00 ~ 13:00"},
	}
}
