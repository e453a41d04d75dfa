package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/contracts"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/planner"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

func (h *Handler) GetPlannerSession(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.PlannerService.GetSession(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) UpdatePlannerField(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.PlannerFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	session, err := h.PlannerService.UpdateField(c.Request.Context(), userID, req.Name, req.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) UpdatePlannerSelectField(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.PlannerFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	session, err := h.PlannerService.UpdateSelectField(c.Request.Context(), userID, req.Name, req.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) UpdatePlannerSliderField(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.PlannerSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	session, err := h.PlannerService.UpdateSliderField(c.Request.Context(), userID, req.Name, req.Values)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) UpdatePlannerDateField(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.PlannerDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	session, err := h.PlannerService.UpdateDateField(c.Request.Context(), userID, req.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) SelectPlannerFile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.PlannerFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	session, err := h.PlannerService.SelectFile(c.Request.Context(), userID, &planner.UploadedFile{
		Name:        req.Name,
		SizeBytes:   req.SizeBytes,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) ClearPlannerFile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.PlannerService.SelectFile(c.Request.Context(), userID, nil)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) SubmitPlanner(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.PlannerService.Submit(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ResetPlanner(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.PlannerService.Reset(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) AdvancePlannerStep(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.PlannerService.Advance(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) RetreatPlannerStep(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	session, err := h.PlannerService.Retreat(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) GetPlannerSummary(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	summary, err := h.PlannerService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
