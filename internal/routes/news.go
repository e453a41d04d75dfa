package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/news"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

func (h *Handler) GetNewsDigest(c *gin.Context) {
	digest, err := h.NewsService.GetDigest(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, digest)
}

func (h *Handler) GetNewsSection(c *gin.Context) {
	section := news.Section(c.Param("section"))
	if !section.IsValid() {
		h.respondError(c, appErrors.NewValidationError("section", "must be one of: global, financial"))
		return
	}

	articles, fallback := h.NewsService.GetSection(c.Request.Context(), section)
	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"fallback": fallback,
	})
}
