package dto

import "regboard-be/pkg/store"

type DashboardStateResponse struct {
	SessionId string      `json:"session_id"`
	State     store.State `json:"state"`
}

type DashboardSearchRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type DashboardViewResponse struct {
	SessionId string `json:"session_id"`
	Html      string `json:"html"`
}
