package models

type Airport struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	IsActive bool   `json:"isActive"`
}
