package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Tabla de la política: única fuente de verdad del efecto de cada tipo.
func TestMovementType_Effect(t *testing.T) {
	diez := decimal.NewFromInt(10)

	casos := []struct {
		nombre   string
		tipo     entity.MovementType
		cantidad decimal.Decimal
		esperado decimal.Decimal
	}{
		{"entrada suma", entity.MovementTypeInbound, diez, decimal.NewFromInt(10)},
		{"salida resta", entity.MovementTypeOutbound, diez, decimal.NewFromInt(-10)},
		{"ajuste positivo se aplica tal cual", entity.MovementTypeAdjustment, diez, decimal.NewFromInt(10)},
		{"ajuste negativo se aplica tal cual", entity.MovementTypeAdjustment, decimal.NewFromInt(-3), decimal.NewFromInt(-3)},
		{"exclusión revierte", entity.MovementTypeDeletion, diez, decimal.NewFromInt(-10)},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.True(t, c.esperado.Equal(c.tipo.Effect(c.cantidad)),
				"efecto esperado %s, obtenido %s", c.esperado, c.tipo.Effect(c.cantidad))
		})
	}
}

// El vocabulario es cerrado: solo {0,1,2,3} son válidos.
func TestMovementType_VocabularioCerrado(t *testing.T) {
	for code := 0; code <= 3; code++ {
		assert.True(t, entity.MovementType(code).IsValid(), "tipo %d debe ser válido", code)
	}
	for _, code := range []int{-1, 4, 99} {
		assert.False(t, entity.MovementType(code).IsValid(), "tipo %d debe ser inválido", code)
	}
}

func TestMovementType_Name(t *testing.T) {
	assert.Equal(t, "inbound", entity.MovementTypeInbound.Name())
	assert.Equal(t, "outbound", entity.MovementTypeOutbound.Name())
	assert.Equal(t, "adjustment", entity.MovementTypeAdjustment.Name())
	assert.Equal(t, "deletion", entity.MovementTypeDeletion.Name())
	assert.Equal(t, "unknown", entity.MovementType(7).Name())
}

// Ajuste y exclusión exigen motivo; entrada y salida no.
func TestMovementType_ReasonRequired(t *testing.T) {
	assert.False(t, entity.MovementTypeInbound.ReasonRequired())
	assert.False(t, entity.MovementTypeOutbound.ReasonRequired())
	assert.True(t, entity.MovementTypeAdjustment.ReasonRequired())
	assert.True(t, entity.MovementTypeDeletion.ReasonRequired())
}
