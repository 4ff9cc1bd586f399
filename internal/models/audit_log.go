package models

import "time"

// Audit action kinds.
const (
	AuditActionLogin    = "LOGIN"
	AuditActionLogout   = "LOGOUT"
	AuditActionRegister = "REGISTER"
	AuditActionCreate   = "CREATE"
	AuditActionUpdate   = "UPDATE"
	AuditActionDelete   = "DELETE"
)

// AuditLog rows are immutable once written.
type AuditLog struct {
	ID        int64     `json:"id"`
	User      string    `json:"user"`
	UserRole  string    `json:"userRole"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
