package entity

import "time"

type TransactionDirection string

const (
	TransactionCredit TransactionDirection = "CREDIT"
	TransactionDebit  TransactionDirection = "DEBIT"
)

type WalletBalance struct {
	UserID  int64   `json:"userId"`
	Balance float64 `json:"balance"`
}

type WalletTransaction struct {
	ID          int64                `json:"id"`
	Direction   TransactionDirection `json:"direction"`
	Amount      float64              `json:"amount"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
}

type WalletSummary struct {
	Balance      float64             `json:"balance"`
	Transactions []WalletTransaction `json:"transactions"`
}
