package entity

import "time"

// Direcciones y estados de una sincronización.
const (
	SyncDirectionPush = "push"
	SyncDirectionPull = "pull"

	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncLog fila de auditoría de una sincronización. Append-only:
// nunca se actualiza ni se borra.
type SyncLog struct {
	ID           string
	UserID       string
	Direction    string // push | pull
	RecordsCount int
	Status       string // success | failed
	ErrorMessage string
	CreatedAt    time.Time
}
