package contracts

type WatchlistAddRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Name   string `json:"name" binding:"omitempty"`
}

type WatchlistItemResponse struct {
	Id      string `json:"id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	AddedAt string `json:"addedAt"`
}
