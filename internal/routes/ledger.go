package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/contracts"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/ledger"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

func (h *Handler) CreateLedgerEntry(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.LedgerEntryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entry := &ledger.Entry{
		UserId: userID,
		Kind:   ledger.Kind(req.Kind),
		Label:  req.Label,
		Amount: req.Amount,
	}
	if req.RecordedAt != nil {
		entry.RecordedAt = *req.RecordedAt
	}

	if err := h.LedgerService.Create(c.Request.Context(), entry); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) UpdateLedgerEntry(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "must be a valid ULID"))
		return
	}

	var req contracts.LedgerEntryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entry := &ledger.Entry{
		Id:     entryID,
		UserId: userID,
		Kind:   ledger.Kind(req.Kind),
		Label:  req.Label,
		Amount: req.Amount,
	}
	if req.RecordedAt != nil {
		entry.RecordedAt = *req.RecordedAt
	}

	if err := h.LedgerService.Update(c.Request.Context(), userID, entry); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteLedgerEntry(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "must be a valid ULID"))
		return
	}

	if err := h.LedgerService.Delete(c.Request.Context(), userID, entryID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "ledger entry deleted"})
}

func (h *Handler) GetLedgerEntries(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var kind *ledger.Kind
	if kindParam := c.Query("kind"); kindParam != "" {
		k := ledger.Kind(kindParam)
		kind = &k
	}

	pagination := h.parsePagination(c)
	entries, total, err := h.LedgerService.GetAll(c.Request.Context(), userID, kind, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(entries, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetLedgerSummary(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ref := time.Now()
	if monthParam := c.Query("month"); monthParam != "" {
		if parsed, err := time.Parse("2006-01", monthParam); err == nil {
			ref = parsed
		}
	}

	summary, err := h.LedgerService.GetMonthlySummary(c.Request.Context(), userID, ref)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
