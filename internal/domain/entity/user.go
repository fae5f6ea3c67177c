package entity

import "time"

// User operador del sistema (caja/estoque).
type User struct {
	ID           int64
	Username     string // único
	FullName     string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}
