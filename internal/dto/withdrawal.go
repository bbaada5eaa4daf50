package dto

import "time"

type SubmitWithdrawalRequestDTO struct {
	Amount           float64 `json:"amount" example:"6"`
	Currency         string  `json:"currency" example:"USDT"`
	RecipientAddress string  `json:"recipientAddress" example:"TWd2yzw5yvKkQ9HvabM1"`
}

type WithdrawalDTO struct {
	ID               int       `json:"id" example:"1"`
	Amount           float64   `json:"amount" example:"6"`
	Currency         string    `json:"currency" example:"USDT"`
	RecipientAddress string    `json:"recipientAddress"`
	Status           string    `json:"status" example:"pending"`
	CreatedAt        time.Time `json:"createdAt"`
}

type SubmitWithdrawalResponseDTO struct {
	Message    string        `json:"message"`
	Withdrawal WithdrawalDTO `json:"withdrawal"`
}

type WithdrawalHistoryResponseDTO struct {
	Withdrawals []WithdrawalDTO `json:"withdrawals"`
	Stats       StatusStatsDTO  `json:"stats"`
}
