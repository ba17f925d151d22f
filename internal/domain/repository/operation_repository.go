package repository

import (
	"context"
	"time"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// OperationRepository define el puerto de persistencia para Operation.
type OperationRepository interface {
	Create(ctx context.Context, op *entity.Operation) error
	GetByID(ctx context.Context, id string) (*entity.Operation, error)
	// Update sobreescribe los campos mutables y UpdatedAt.
	Update(ctx context.Context, op *entity.Operation) error
	// Touch actualiza solo UpdatedAt (al registrar un movimiento).
	Touch(ctx context.Context, id string, at time.Time) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Operation, error)
	ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Operation, error)
	Delete(ctx context.Context, id string) error
}
