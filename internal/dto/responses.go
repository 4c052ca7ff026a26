package dto

import "medicare-backend/internal/domain"

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Role    string      `json:"role"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	User    domain.User `json:"user"`
}

type DashboardResponse struct {
	Users        int64                    `json:"users"`
	Products     int64                    `json:"products"`
	Orders       int64                    `json:"orders"`
	RecentOrders []map[string]interface{} `json:"recent_orders"`
}
