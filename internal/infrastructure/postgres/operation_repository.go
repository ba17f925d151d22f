package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

const operationColumns = `id, number, status, description, price_per_unit, agreed_quantity, total_amount,
	user_id, organization_id, provider_id, product_id, closed_at, created_at, updated_at`

// OperationRepo adaptador de persistencia para Operation (usable con pool o tx).
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

// Create persiste una nueva operación. Number único → domain.ErrDuplicate.
func (r *OperationRepo) Create(ctx context.Context, op *entity.Operation) error {
	query := `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Number, op.Status, op.Description, op.PricePerUnit, op.AgreedQuantity, op.TotalAmount,
		op.UserID, op.OrganizationID, op.ProviderID, op.ProductID, op.ClosedAt, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// GetByID obtiene una operación por ID. Devuelve (nil, nil) si no existe.
func (r *OperationRepo) GetByID(ctx context.Context, id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`
	op, err := scanOperation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	return op, nil
}

// Update sobreescribe los campos mutables y los timestamps de la operación.
func (r *OperationRepo) Update(ctx context.Context, op *entity.Operation) error {
	query := `
		UPDATE operations
		SET status = $2, description = $3, price_per_unit = $4, agreed_quantity = $5,
			total_amount = $6, closed_at = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Status, op.Description, op.PricePerUnit, op.AgreedQuantity,
		op.TotalAmount, op.ClosedAt, op.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	return nil
}

// Touch actualiza solo updated_at; registrar un movimiento toca a su operación.
func (r *OperationRepo) Touch(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE operations SET updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch operation: %w", err)
	}
	return nil
}

// ListByUser lista operaciones del usuario con paginación, más recientes primero.
func (r *OperationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Operation, error) {
	query := `SELECT ` + operationColumns + `
		FROM operations WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	return collectOperations(rows)
}

// ListUpdatedSince devuelve las operaciones del usuario con updated_at
// estrictamente posterior al checkpoint (delta del pull).
func (r *OperationRepo) ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Operation, error) {
	query := `SELECT ` + operationColumns + `
		FROM operations WHERE user_id = $1 AND updated_at > $2 ORDER BY updated_at`
	rows, err := r.q.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list operations since: %w", err)
	}
	defer rows.Close()
	return collectOperations(rows)
}

// Delete elimina la operación. Los movimientos se borran en la misma
// transacción vía los repos de movimientos (cascada explícita).
func (r *OperationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM operations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	return nil
}

func scanOperation(row pgx.Row) (*entity.Operation, error) {
	var op entity.Operation
	err := row.Scan(
		&op.ID, &op.Number, &op.Status, &op.Description, &op.PricePerUnit, &op.AgreedQuantity, &op.TotalAmount,
		&op.UserID, &op.OrganizationID, &op.ProviderID, &op.ProductID, &op.ClosedAt, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func collectOperations(rows pgx.Rows) ([]*entity.Operation, error) {
	var list []*entity.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, op)
	}
	return list, rows.Err()
}
