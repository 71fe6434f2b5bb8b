package entity

import "github.com/shopspring/decimal"

// MovementType tipo de movimiento del kardex. El vocabulario es cerrado:
// cualquier código fuera de {0,1,2,3} se rechaza en validación.
type MovementType int

const (
	// MovementTypeInbound entrada de mercancía: suma al saldo.
	MovementTypeInbound MovementType = 0
	// MovementTypeOutbound salida de mercancía: resta del saldo.
	MovementTypeOutbound MovementType = 1
	// MovementTypeAdjustment ajuste de inventario: la cantidad lleva su propio
	// signo y se aplica tal cual. Requiere motivo.
	MovementTypeAdjustment MovementType = 2
	// MovementTypeDeletion exclusión: revierte la cantidad del saldo. Requiere
	// motivo.
	MovementTypeDeletion MovementType = 3
)

// IsValid indica si el código pertenece al vocabulario.
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeInbound, MovementTypeOutbound, MovementTypeAdjustment, MovementTypeDeletion:
		return true
	}
	return false
}

// Name nombre estable del tipo para respuestas y reportes.
func (t MovementType) Name() string {
	switch t {
	case MovementTypeInbound:
		return "inbound"
	case MovementTypeOutbound:
		return "outbound"
	case MovementTypeAdjustment:
		return "adjustment"
	case MovementTypeDeletion:
		return "deletion"
	}
	return "unknown"
}

// ReasonRequired indica si el tipo exige un motivo no vacío.
func (t MovementType) ReasonRequired() bool {
	return t == MovementTypeAdjustment || t == MovementTypeDeletion
}

// Effect efecto del movimiento sobre el saldo: única fuente de verdad del
// signo de cada tipo.
func (t MovementType) Effect(quantity decimal.Decimal) decimal.Decimal {
	switch t {
	case MovementTypeOutbound, MovementTypeDeletion:
		return quantity.Neg()
	default:
		return quantity
	}
}
