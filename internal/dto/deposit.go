package dto

import "time"

type SubmitDepositRequestDTO struct {
	Amount          float64 `json:"amount" example:"100"`
	Currency        string  `json:"currency" example:"USDT"`
	TransactionHash string  `json:"transactionHash" example:"0xdeadbeef"`
	PaymentProofURL string  `json:"paymentProofUrl,omitempty" example:"/api/files/7"`
}

type DepositDTO struct {
	ID              int       `json:"id" example:"1"`
	Amount          float64   `json:"amount" example:"100"`
	Currency        string    `json:"currency" example:"USDT"`
	TransactionHash string    `json:"transactionHash" example:"0xdeadbeef"`
	PaymentProofURL string    `json:"paymentProofUrl,omitempty"`
	Status          string    `json:"status" example:"pending"`
	CreatedAt       time.Time `json:"createdAt"`
}

type SubmitDepositResponseDTO struct {
	Message string     `json:"message"`
	Deposit DepositDTO `json:"deposit"`
}

type StatusStatsDTO struct {
	Total       int     `json:"total" example:"3"`
	Pending     int     `json:"pending" example:"1"`
	Completed   int     `json:"completed" example:"1"`
	Rejected    int     `json:"rejected" example:"1"`
	TotalAmount float64 `json:"totalAmount" example:"350"`
}

type DepositHistoryResponseDTO struct {
	Deposits []DepositDTO   `json:"deposits"`
	Stats    StatusStatsDTO `json:"stats"`
}
