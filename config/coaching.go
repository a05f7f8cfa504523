package config

import (
	"time"

	"main/utils"
)

// AnalyticsConfig carries the classification thresholds for KPI rows. The
// margin is the gap below target at which a category counts as at risk.
type AnalyticsConfig struct {
	RiskMargin int
}

func LoadAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		RiskMargin: utils.GetEnvAsInt("KPI_RISK_MARGIN", 10),
	}
}

// RetrievalConfig tunes the evidence-gated chat. MinScore is the lexical match
// score below which the service refuses to answer instead of guessing.
type RetrievalConfig struct {
	MinScore      float64
	MaxEvidence   int
	MaxCandidates int
}

func LoadRetrievalConfig() RetrievalConfig {
	return RetrievalConfig{
		MinScore:      float64(utils.GetEnvAsInt("RETRIEVAL_MIN_SCORE", 2)),
		MaxEvidence:   utils.GetEnvAsInt("RETRIEVAL_MAX_EVIDENCE", 3),
		MaxCandidates: utils.GetEnvAsInt("RETRIEVAL_MAX_CANDIDATES", 5),
	}
}

// PlannerConfig points at the optional LLM endpoint used for schedule
// generation. When neither Endpoint nor OpenAIKey is set, the planner serves
// its built-in example plan.
type PlannerConfig struct {
	Endpoint  string
	OpenAIKey string
	Timeout   time.Duration
}

func LoadPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Endpoint:  utils.GetEnvAsString("PLANNER_LLM_ENDPOINT", ""),
		OpenAIKey: utils.GetEnvAsString("OPENAI_API_KEY", ""),
		Timeout:   utils.GetEnvAsDuration("PLANNER_TIMEOUT", 15*time.Second),
	}
}
