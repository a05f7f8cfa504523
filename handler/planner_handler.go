package handler

import (
	"log"
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct {
	planner *usecase.PlannerService
	todos   *usecase.TodoService
}

func NewPlannerHandler(planner *usecase.PlannerService, todos *usecase.TodoService) *PlannerHandler {
	return &PlannerHandler{planner: planner, todos: todos}
}

// GeneratePlan asks the configured LLM endpoint for schedule items, falling
// back to the built-in plan when no backend is reachable. With ?apply=true
// the items are also inserted as today's todos.
func (h *PlannerHandler) GeneratePlan(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	items := h.planner.GeneratePlan(c.Request.Context(), req.Prompt)

	responses := make([]dto.PlanItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.PlanItemResponse{
			Category: item.Category,
			Label:    item.Label,
			Time:     item.Time,
		}
	}

	applied := 0
	if c.Query("apply") == "true" {
		today := model.FormatDateKey(time.Now())
		for _, item := range items {
			if _, err := h.todos.AddTodo(c.Request.Context(), userID, item.Category, today, item.Label, item.Time); err != nil {
				log.Printf("Warning: failed to apply plan item %q: %v", item.Label, err)
				continue
			}
			applied++
		}
	}

	utils.Success(c, gin.H{
		"items":   responses,
		"applied": applied,
	})
}
