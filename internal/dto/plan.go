package dto

import "time"

type CompleteRoundRequestDTO struct {
	PlanAmount int `json:"planAmount" example:"100"`
}

type ProgressDTO struct {
	ID            int        `json:"id" example:"1"`
	PlanAmount    int        `json:"planAmount" example:"100"`
	Profit        float64    `json:"profit" example:"8"`
	RoundCount    int        `json:"roundCount" example:"2"`
	CanWithdraw   bool       `json:"canWithdraw" example:"true"`
	LastRoundDate *time.Time `json:"lastRoundDate,omitempty"`
}

type CompleteRoundResponseDTO struct {
	Success      bool        `json:"success" example:"true"`
	Progress     ProgressDTO `json:"progress"`
	ProfitEarned float64     `json:"profitEarned" example:"4"`
	TotalProfit  float64     `json:"totalProfit" example:"8"`
}

type AllProgressResponseDTO struct {
	Success     bool          `json:"success" example:"true"`
	Progresses  []ProgressDTO `json:"progresses"`
	TotalProfit float64       `json:"totalProfit" example:"8"`
	CanWithdraw bool          `json:"canWithdraw" example:"true"`
	DailyStreak int           `json:"dailyStreak" example:"2"`
}
