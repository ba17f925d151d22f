package repository

import (
	"context"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// SyncLogRepository puerto de auditoría de sincronizaciones.
// Deliberadamente sin Update ni Delete: el log es append-only.
type SyncLogRepository interface {
	Create(ctx context.Context, l *entity.SyncLog) error
	// ListByUser devuelve las filas más recientes primero, hasta limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SyncLog, error)
	// LastSuccess devuelve la fila success más reciente, o nil.
	LastSuccess(ctx context.Context, userID string) (*entity.SyncLog, error)
}
