package entity

import "time"

// Product es una entidad externa al ledger: el módulo de productos la crea y
// la muta; aquí solo se lee para validar alcance de cuenta y proyectar el
// estado (flag Deleted).
type Product struct {
	ID        int64
	AccountID int64
	Code      string
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
