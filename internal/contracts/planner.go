package contracts

import "time"

type PlannerFieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type PlannerSliderRequest struct {
	Name   string    `json:"name" binding:"required"`
	Values []float64 `json:"values"`
}

type PlannerDateRequest struct {
	Date *time.Time `json:"date"`
}

type PlannerFileRequest struct {
	Name        string `json:"name" binding:"required"`
	SizeBytes   int64  `json:"sizeBytes" binding:"required,gt=0"`
	ContentType string `json:"contentType" binding:"required"`
}
