package models

import "time"

// SmsLog statuses partition the three outcomes of a send attempt.
const (
	SmsStatusSuccess       = "Success"
	SmsStatusFailed        = "Failed"
	SmsStatusRequestFailed = "Request Failed"
)

// SmsLog is append-only: exactly one row per send attempt, win or lose.
type SmsLog struct {
	ID          int64     `json:"id"`
	Recipients  []string  `json:"recipients"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	ReferenceID *string   `json:"reference_id"`
	CreditUsed  float64   `json:"credit_used"`
	CreatedAt   time.Time `json:"created_at"`
}

// SmsCredentials is the singleton gateway credential row (id = 1).
type SmsCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	APICode  string `json:"api_code"`
}
