package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	coach *usecase.CoachService
}

func NewCoachHandler(coach *usecase.CoachService) *CoachHandler {
	return &CoachHandler{coach: coach}
}

// UploadMaterial stores raw study text and splits it into segments with
// estimated study minutes.
func (h *CoachHandler) UploadMaterial(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.UploadMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	mat, err := h.coach.UploadMaterial(c.Request.Context(), userID, req.Name, req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyMaterial) {
			utils.BadRequest(c, "Material text cannot be empty")
			return
		}
		utils.InternalError(c, "Failed to store material")
		return
	}

	utils.Created(c, dto.ToMaterialResponse(mat))
}

func (h *CoachHandler) ListMaterials(c *gin.Context) {
	userID := c.GetString("user_id")

	materials, err := h.coach.ListMaterials(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to list materials")
		return
	}

	utils.Success(c, gin.H{"materials": dto.ToMaterialResponses(materials)})
}

func (h *CoachHandler) GetMaterial(c *gin.Context) {
	userID := c.GetString("user_id")
	materialID := c.Param("id")

	mat, err := h.coach.GetMaterial(c.Request.Context(), userID, materialID)
	if err != nil {
		if errors.Is(err, usecase.ErrMaterialNotFound) {
			utils.NotFound(c, "Material not found")
			return
		}
		utils.InternalError(c, "Failed to fetch material")
		return
	}

	utils.Success(c, dto.ToMaterialResponse(mat))
}

func (h *CoachHandler) DeleteMaterial(c *gin.Context) {
	userID := c.GetString("user_id")
	materialID := c.Param("id")

	if err := h.coach.DeleteMaterial(c.Request.Context(), userID, materialID); err != nil {
		if errors.Is(err, usecase.ErrMaterialNotFound) {
			utils.NotFound(c, "Material not found")
			return
		}
		utils.InternalError(c, "Failed to delete material")
		return
	}

	utils.NoContent(c)
}

func (h *CoachHandler) MarkSegment(c *gin.Context) {
	userID := c.GetString("user_id")
	materialID := c.Param("id")
	segmentID := c.Param("segment")

	var req dto.MarkSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	if err := h.coach.MarkSegment(c.Request.Context(), userID, materialID, segmentID, req.Done); err != nil {
		if errors.Is(err, usecase.ErrMaterialNotFound) {
			utils.NotFound(c, "Material or segment not found")
			return
		}
		utils.InternalError(c, "Failed to update segment")
		return
	}

	utils.Success(c, gin.H{"done": req.Done})
}

func (h *CoachHandler) GetSummary(c *gin.Context) {
	userID := c.GetString("user_id")
	materialID := c.Param("id")

	summary, err := h.coach.Summary(c.Request.Context(), userID, materialID)
	if err != nil {
		if errors.Is(err, usecase.ErrMaterialNotFound) {
			utils.NotFound(c, "Material not found")
			return
		}
		utils.InternalError(c, "Failed to build summary")
		return
	}

	utils.Success(c, summary)
}

// Ask answers a question from the material's own text, or refuses when no
// segment scores above the evidence threshold.
func (h *CoachHandler) Ask(c *gin.Context) {
	userID := c.GetString("user_id")
	materialID := c.Param("id")

	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	answer, err := h.coach.AnswerQuery(c.Request.Context(), userID, materialID, req.Question)
	if err != nil {
		if errors.Is(err, usecase.ErrMaterialNotFound) {
			utils.NotFound(c, "Material not found")
			return
		}
		utils.InternalError(c, "Failed to answer question")
		return
	}

	if answer.Refused {
		utils.TrackCoachQuery("refused")
	} else {
		utils.TrackCoachQuery("answered")
	}
	utils.Success(c, answer)
}
