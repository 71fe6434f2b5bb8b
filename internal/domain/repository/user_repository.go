package repository

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// UserRepository acceso de solo lectura a usuarios para autenticación.
type UserRepository interface {
	// GetByEmail devuelve el usuario o nil si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
