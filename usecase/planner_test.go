package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/config"
)

func TestGeneratePlanFromEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Prompt != "prep for the July TOEIC" {
			t.Errorf("prompt = %q", req.Prompt)
		}
		json.NewEncoder(w).Encode(planResponse{Items: []PlanItem{
			{Category: "exam_prep", Label: "RC reading drill - 10:00 ~ 13:00", Time: 180},
		}})
	}))
	defer srv.Close()

	svc := NewPlannerService(config.PlannerConfig{Endpoint: srv.URL, Timeout: 2 * time.Second})
	items := svc.GeneratePlan(context.Background(), "prep for the July TOEIC")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Category != "exam_prep" || items[0].Time != 180 {
		t.Errorf("unexpected item %+v", items[0])
	}
}

func TestGeneratePlanFallsBackOnEndpointFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty item list", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(planResponse{})
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			svc := NewPlannerService(config.PlannerConfig{Endpoint: srv.URL, Timeout: 2 * time.Second})
			items := svc.GeneratePlan(context.Background(), "anything")
			if len(items) == 0 {
				t.Fatal("fallback plan is empty")
			}
			fallback := fallbackPlan()
			if items[0].Label != fallback[0].Label {
				t.Errorf("expected the fallback plan, got %+v", items)
			}
		})
	}
}

func TestGeneratePlanWithoutConfiguration(t *testing.T) {
	svc := NewPlannerService(config.PlannerConfig{Timeout: time.Second})
	items := svc.GeneratePlan(context.Background(), "anything")
	if len(items) != len(fallbackPlan()) {
		t.Fatalf("expected the built-in plan, got %d items", len(items))
	}
}
