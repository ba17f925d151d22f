package repository

import (
	"context"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// MoneyMovementRepository puerto de persistencia para MoneyMovement.
// Los movimientos son inmutables: no hay Update; el borrado solo ocurre
// en la cascada de la operación.
type MoneyMovementRepository interface {
	Create(ctx context.Context, m *entity.MoneyMovement) error
	GetByID(ctx context.Context, id string) (*entity.MoneyMovement, error)
	ListByOperation(ctx context.Context, operationID string) ([]*entity.MoneyMovement, error)
	DeleteByOperation(ctx context.Context, operationID string) error
}

// ProductMovementRepository puerto de persistencia para ProductMovement.
type ProductMovementRepository interface {
	Create(ctx context.Context, m *entity.ProductMovement) error
	GetByID(ctx context.Context, id string) (*entity.ProductMovement, error)
	ListByOperation(ctx context.Context, operationID string) ([]*entity.ProductMovement, error)
	DeleteByOperation(ctx context.Context, operationID string) error
}
