package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month := 0
	year := 0
	if m, err := pkg.ParseInt(c.DefaultQuery("month", "0")); err == nil {
		month = m
	}
	if y, err := pkg.ParseInt(c.DefaultQuery("year", "0")); err == nil {
		year = y
	}

	response, err := h.DashboardService.GetDashboard(c.Request.Context(), userID, month, year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
