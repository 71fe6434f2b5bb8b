package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Límites de los campos descriptivos; el ledger nunca persiste texto por
// encima de estos topes.
const (
	maxReferenceDocument = 50
	maxBatchNumber       = 30
	maxLocation          = 100
	maxReason            = 500
)

// Ventana del listado por cuenta.
const (
	MinLimitRecords     = 1
	MaxLimitRecords     = 1000
	DefaultLimitRecords = 100
)

// Validator aplica las invariantes de campo y cruzadas sobre un movimiento
// propuesto antes de admitirlo al ledger. Es puro sobre sus entradas salvo la
// verificación de existencia del producto, que es de solo lectura.
type Validator struct {
	productRepo repository.ProductRepository
}

// NewValidator construye el validador.
func NewValidator(productRepo repository.ProductRepository) *Validator {
	return &Validator{productRepo: productRepo}
}

// ValidatedMovement movimiento admitido, con el producto ya resuelto dentro
// del alcance de la cuenta y los campos de texto recortados.
type ValidatedMovement struct {
	Product           *entity.Product
	Type              entity.MovementType
	Quantity          decimal.Decimal
	ReferenceDocument string
	BatchNumber       string
	ExpirationDate    *time.Time
	Location          string
	Reason            string
}

// ValidateCreate valida el candidato y lo resuelve contra el producto.
func (v *Validator) ValidateCreate(ctx context.Context, accountID int64, in dto.CreateStockMovementRequest) (*ValidatedMovement, error) {
	if in.ProductID <= 0 {
		return nil, fmt.Errorf("%w: idProduct", domain.ErrInvalidInput)
	}

	mt := entity.MovementType(in.MovementType)
	if !mt.IsValid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidMovementType, in.MovementType)
	}

	if in.Quantity.IsZero() {
		return nil, fmt.Errorf("%w: quantity", domain.ErrInvalidInput)
	}
	// El signo lo aporta el tipo; solo el ajuste admite cantidad negativa.
	if mt != entity.MovementTypeAdjustment && in.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: quantity", domain.ErrInvalidInput)
	}

	reason := strings.TrimSpace(in.Reason)
	if mt.ReasonRequired() && reason == "" {
		return nil, domain.ErrMissingReason
	}

	if len(in.ReferenceDocument) > maxReferenceDocument {
		return nil, fmt.Errorf("%w: referenceDocument", domain.ErrInvalidInput)
	}
	if len(in.BatchNumber) > maxBatchNumber {
		return nil, fmt.Errorf("%w: batchNumber", domain.ErrInvalidInput)
	}
	if len(in.Location) > maxLocation {
		return nil, fmt.Errorf("%w: location", domain.ErrInvalidInput)
	}
	if len(reason) > maxReason {
		return nil, fmt.Errorf("%w: reason", domain.ErrInvalidInput)
	}

	var expiration *time.Time
	if in.ExpirationDate != "" {
		t, err := parseDate(in.ExpirationDate, false)
		if err != nil {
			return nil, fmt.Errorf("%w: expirationDate", domain.ErrInvalidInput)
		}
		expiration = &t
	}

	product, err := v.productRepo.GetByID(ctx, accountID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	return &ValidatedMovement{
		Product:           product,
		Type:              mt,
		Quantity:          in.Quantity,
		ReferenceDocument: strings.TrimSpace(in.ReferenceDocument),
		BatchNumber:       strings.TrimSpace(in.BatchNumber),
		ExpirationDate:    expiration,
		Location:          strings.TrimSpace(in.Location),
		Reason:            reason,
	}, nil
}

// ValidateListFilter valida el query del listado por cuenta y aplica los
// valores por defecto (orden date_desc, límite 100). Un límite fuera de
// [1,1000] se rechaza antes de tocar la base, no se recorta en silencio.
func (v *Validator) ValidateListFilter(in dto.ListStockMovementsQuery) (repository.MovementFilter, error) {
	var f repository.MovementFilter

	f.OrderBy = in.OrderBy
	if f.OrderBy == "" {
		f.OrderBy = repository.OrderByDateDesc
	}
	switch f.OrderBy {
	case repository.OrderByDateAsc, repository.OrderByDateDesc,
		repository.OrderByProductAsc, repository.OrderByProductDesc:
	default:
		return f, fmt.Errorf("%w: orderBy", domain.ErrInvalidInput)
	}

	f.Limit = DefaultLimitRecords
	if in.LimitRecords != nil {
		if *in.LimitRecords < MinLimitRecords || *in.LimitRecords > MaxLimitRecords {
			return f, fmt.Errorf("%w: limitRecords", domain.ErrInvalidInput)
		}
		f.Limit = *in.LimitRecords
	}

	if in.ProductID != nil {
		if *in.ProductID <= 0 {
			return f, fmt.Errorf("%w: idProduct", domain.ErrInvalidInput)
		}
		f.ProductID = in.ProductID
	}
	if in.UserID != nil {
		if *in.UserID <= 0 {
			return f, fmt.Errorf("%w: idUser", domain.ErrInvalidInput)
		}
		f.UserID = in.UserID
	}
	if in.MovementType != nil {
		mt := entity.MovementType(*in.MovementType)
		if !mt.IsValid() {
			return f, fmt.Errorf("%w: %d", domain.ErrInvalidMovementType, *in.MovementType)
		}
		f.Type = &mt
	}

	var err error
	if f.StartDate, f.EndDate, err = parseDateRange(in.StartDate, in.EndDate); err != nil {
		return f, err
	}
	return f, nil
}

// ValidateHistoryFilter valida los filtros de la historia de un producto.
func (v *Validator) ValidateHistoryFilter(in dto.MovementHistoryQuery) (repository.HistoryFilter, error) {
	var f repository.HistoryFilter

	if in.MovementType != nil {
		mt := entity.MovementType(*in.MovementType)
		if !mt.IsValid() {
			return f, fmt.Errorf("%w: %d", domain.ErrInvalidMovementType, *in.MovementType)
		}
		f.Type = &mt
	}

	var err error
	if f.StartDate, f.EndDate, err = parseDateRange(in.StartDate, in.EndDate); err != nil {
		return f, err
	}
	return f, nil
}

func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, err := parseDate(start, false)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: startDate", domain.ErrInvalidInput)
		}
		from = &t
	}
	if end != "" {
		t, err := parseDate(end, true)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: endDate", domain.ErrInvalidInput)
		}
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%w: startDate > endDate", domain.ErrInvalidInput)
	}
	return from, to, nil
}

// parseDate acepta RFC3339 o fecha simple YYYY-MM-DD. Para una fecha simple
// usada como cota superior, endOfDay la extiende al final del día para que el
// rango sea inclusivo.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
