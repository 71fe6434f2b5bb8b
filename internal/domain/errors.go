package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los validadores los
// envuelven con fmt.Errorf("%w: campo") para que el detalle viaje con el error
// y los handlers los mapeen con errors.Is.
var (
	ErrProductNotFound        = errors.New("producto no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidMovementType    = errors.New("tipo de movimiento inválido")
	ErrMissingReason          = errors.New("motivo requerido para ajuste o exclusión")
	ErrConcurrentModification = errors.New("conflicto de concurrencia sobre el kardex del producto")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrUnauthorized           = errors.New("no autorizado")
)
