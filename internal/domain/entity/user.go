package entity

import "time"

// User principal que opera sobre el kardex. La gestión de usuarios es externa;
// aquí solo se necesita para autenticar y registrar el autor de cada asiento.
type User struct {
	ID           int64
	AccountID    int64
	Email        string
	Name         string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}
