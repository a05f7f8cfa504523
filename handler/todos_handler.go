package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TodosHandler struct {
	todos *usecase.TodoService
}

func NewTodosHandler(todos *usecase.TodoService) *TodosHandler {
	return &TodosHandler{todos: todos}
}

// GetDay returns the items for one (category, day) bucket, seeding the
// built-in defaults on first visit.
func (h *TodosHandler) GetDay(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryID := c.Param("category")
	key := model.DateKey(c.Param("date"))

	if !key.IsValid() {
		utils.BadRequest(c, "Invalid date key")
		return
	}

	items, err := h.todos.EnsureDay(c.Request.Context(), userID, categoryID, key)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.InternalError(c, "Failed to load day")
		return
	}

	utils.TrackTodoOperation("list_day")
	utils.Success(c, gin.H{"items": dto.ToTodoResponses(items)})
}

func (h *TodosHandler) AddTodo(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.AddTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	item, err := h.todos.AddTodo(c.Request.Context(), userID, req.CategoryID, model.DateKey(req.DateKey), req.Label, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyLabel):
			utils.BadRequest(c, "Label cannot be empty")
		case errors.Is(err, usecase.ErrNegativeTime):
			utils.BadRequest(c, "Time must not be negative")
		case errors.Is(err, usecase.ErrCategoryNotFound):
			utils.NotFound(c, "Category not found")
		default:
			utils.InternalError(c, "Failed to add todo")
		}
		return
	}

	utils.TrackTodoOperation("add")
	utils.Created(c, dto.ToTodoResponse(item))
}

func (h *TodosHandler) ToggleTodo(c *gin.Context) {
	userID := c.GetString("user_id")
	todoID := c.Param("id")

	item, err := h.todos.ToggleTodo(c.Request.Context(), userID, todoID)
	if err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			utils.NotFound(c, "Todo not found")
			return
		}
		utils.InternalError(c, "Failed to toggle todo")
		return
	}

	utils.TrackTodoOperation("toggle")
	utils.Success(c, dto.ToTodoResponse(item))
}

func (h *TodosHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetString("user_id")
	todoID := c.Param("id")

	if err := h.todos.DeleteTodo(c.Request.Context(), userID, todoID); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			utils.NotFound(c, "Todo not found")
			return
		}
		utils.InternalError(c, "Failed to delete todo")
		return
	}

	utils.TrackTodoOperation("delete")
	utils.NoContent(c)
}

func (h *TodosHandler) ListCategories(c *gin.Context) {
	userID := c.GetString("user_id")

	extras, err := h.todos.ListCategories(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to list categories")
		return
	}

	categories := make([]dto.CategoryResponse, 0, len(model.BuiltinCategoryIDs)+len(extras))
	for _, id := range model.BuiltinCategoryIDs {
		categories = append(categories, dto.CategoryResponse{
			ID:      id,
			Name:    h.todos.CategoryLabel(c.Request.Context(), userID, id),
			Builtin: true,
		})
	}
	for _, cat := range extras {
		categories = append(categories, dto.CategoryResponse{
			ID:   cat.CategoryID,
			Name: cat.Name,
		})
	}

	utils.Success(c, gin.H{"categories": categories})
}

func (h *TodosHandler) CreateCategory(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	cat, err := h.todos.CreateCategory(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCategoryName) {
			utils.BadRequest(c, "Category name cannot be empty")
			return
		}
		utils.InternalError(c, "Failed to create category")
		return
	}

	utils.Created(c, dto.CategoryResponse{ID: cat.CategoryID, Name: cat.Name})
}

// DeleteCategory removes an extra category and cascades its todos, day
// marks, and timeline entries. Built-in categories cannot be removed.
func (h *TodosHandler) DeleteCategory(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryID := c.Param("id")

	if err := h.todos.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBuiltinCategory):
			utils.Forbidden(c, "Built-in categories cannot be deleted")
		case errors.Is(err, usecase.ErrCategoryNotFound):
			utils.NotFound(c, "Category not found")
		default:
			utils.InternalError(c, "Failed to delete category")
		}
		return
	}

	utils.NoContent(c)
}

func (h *TodosHandler) GetTimeline(c *gin.Context) {
	userID := c.GetString("user_id")

	entries, err := h.todos.Timeline(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load timeline")
		return
	}

	utils.Success(c, gin.H{"entries": dto.ToTimelineResponses(entries)})
}
