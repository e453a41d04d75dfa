package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/contracts"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

func (h *Handler) GetTimeSeries(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := market.Interval(c.DefaultQuery("interval", string(market.IntervalDaily)))
	outputSize := market.OutputSize(c.DefaultQuery("outputsize", string(market.OutputCompact)))

	series, err := h.MarketService.GetTimeSeries(c.Request.Context(), symbol, interval, outputSize)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

func (h *Handler) GetWatchlist(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	items, err := h.MarketService.GetWatchlist(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]*contracts.WatchlistItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &contracts.WatchlistItemResponse{
			Id:      item.Id.String(),
			Symbol:  item.Symbol,
			Name:    item.Name,
			AddedAt: item.AddedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, responses)
}

func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req contracts.WatchlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	item, err := h.MarketService.AddToWatchlist(c.Request.Context(), userID, req.Symbol, req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &contracts.WatchlistItemResponse{
		Id:      item.Id.String(),
		Symbol:  item.Symbol,
		Name:    item.Name,
		AddedAt: item.AddedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.MarketService.RemoveFromWatchlist(c.Request.Context(), userID, c.Param("symbol")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "symbol removed from watchlist"})
}
