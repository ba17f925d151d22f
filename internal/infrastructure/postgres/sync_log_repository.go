package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

var _ repository.SyncLogRepository = (*SyncLogRepo)(nil)

// SyncLogRepo adaptador append-only para la auditoría de sincronizaciones.
// No expone Update ni Delete a propósito.
type SyncLogRepo struct {
	q Querier
}

// NewSyncLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSyncLogRepository(q Querier) *SyncLogRepo {
	return &SyncLogRepo{q: q}
}

// Create inserta una fila de auditoría.
func (r *SyncLogRepo) Create(ctx context.Context, l *entity.SyncLog) error {
	query := `
		INSERT INTO sync_logs (id, user_id, direction, records_count, status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, l.ID, l.UserID, l.Direction, l.RecordsCount, l.Status, l.ErrorMessage, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sync log: %w", err)
	}
	return nil
}

// ListByUser devuelve las filas más recientes primero, hasta limit.
func (r *SyncLogRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SyncLog, error) {
	query := `
		SELECT id, user_id, direction, records_count, status, error_message, created_at
		FROM sync_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.SyncLog
	for rows.Next() {
		var l entity.SyncLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Direction, &l.RecordsCount, &l.Status, &l.ErrorMessage, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sync log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// LastSuccess devuelve la sincronización exitosa más reciente, o nil.
func (r *SyncLogRepo) LastSuccess(ctx context.Context, userID string) (*entity.SyncLog, error) {
	query := `
		SELECT id, user_id, direction, records_count, status, error_message, created_at
		FROM sync_logs WHERE user_id = $1 AND status = 'success' ORDER BY created_at DESC LIMIT 1`
	var l entity.SyncLog
	err := r.q.QueryRow(ctx, query, userID).Scan(&l.ID, &l.UserID, &l.Direction, &l.RecordsCount, &l.Status, &l.ErrorMessage, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last successful sync: %w", err)
	}
	return &l, nil
}
