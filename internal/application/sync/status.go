package sync

import (
	"context"
	"time"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
)

const historyLimit = 20

// Status devuelve el último checkpoint exitoso y el historial reciente.
func (uc *UseCase) Status(ctx context.Context, userID string) (*dto.SyncStatusResponse, error) {
	last, err := uc.syncLogs.LastSuccess(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := uc.syncLogs.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}

	var lastSync *time.Time
	if last != nil {
		t := last.CreatedAt
		lastSync = &t
	}
	out := make([]dto.SyncLogEntry, 0, len(history))
	for _, l := range history {
		out = append(out, dto.SyncLogEntry{
			ID:           l.ID,
			Direction:    l.Direction,
			RecordsCount: l.RecordsCount,
			Status:       l.Status,
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
		})
	}
	return &dto.SyncStatusResponse{LastSync: lastSync, History: out}, nil
}
