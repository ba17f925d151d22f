package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

var (
	_ repository.MoneyMovementRepository   = (*MoneyMovementRepo)(nil)
	_ repository.ProductMovementRepository = (*ProductMovementRepo)(nil)
)

// MoneyMovementRepo adaptador de persistencia para MoneyMovement.
// Solo inserta, lee y borra por operación: los movimientos son inmutables.
type MoneyMovementRepo struct {
	q Querier
}

// NewMoneyMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoneyMovementRepository(q Querier) *MoneyMovementRepo {
	return &MoneyMovementRepo{q: q}
}

// Create persiste un movimiento de dinero. ID duplicado → domain.ErrDuplicate.
func (r *MoneyMovementRepo) Create(ctx context.Context, m *entity.MoneyMovement) error {
	query := `
		INSERT INTO money_movements (id, operation_id, amount, type, method, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.OperationID, m.Amount, m.Type, m.Method, m.Description, m.Date, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert money movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *MoneyMovementRepo) GetByID(ctx context.Context, id string) (*entity.MoneyMovement, error) {
	query := `
		SELECT id, operation_id, amount, type, method, description, date, created_at, updated_at
		FROM money_movements WHERE id = $1`
	var m entity.MoneyMovement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.OperationID, &m.Amount, &m.Type, &m.Method, &m.Description, &m.Date, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get money movement: %w", err)
	}
	return &m, nil
}

// ListByOperation lista los movimientos de dinero de una operación por fecha.
func (r *MoneyMovementRepo) ListByOperation(ctx context.Context, operationID string) ([]*entity.MoneyMovement, error) {
	query := `
		SELECT id, operation_id, amount, type, method, description, date, created_at, updated_at
		FROM money_movements WHERE operation_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("list money movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MoneyMovement
	for rows.Next() {
		var m entity.MoneyMovement
		if err := rows.Scan(&m.ID, &m.OperationID, &m.Amount, &m.Type, &m.Method, &m.Description, &m.Date, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan money movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByOperation borra los movimientos de una operación (cascada del delete).
func (r *MoneyMovementRepo) DeleteByOperation(ctx context.Context, operationID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM money_movements WHERE operation_id = $1`, operationID)
	if err != nil {
		return fmt.Errorf("delete money movements: %w", err)
	}
	return nil
}

// ProductMovementRepo adaptador de persistencia para ProductMovement.
type ProductMovementRepo struct {
	q Querier
}

// NewProductMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductMovementRepository(q Querier) *ProductMovementRepo {
	return &ProductMovementRepo{q: q}
}

// Create persiste un movimiento de producto. ID duplicado → domain.ErrDuplicate.
func (r *ProductMovementRepo) Create(ctx context.Context, m *entity.ProductMovement) error {
	query := `
		INSERT INTO product_movements (id, operation_id, net_weight, gross_weight, tare, type, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.OperationID, m.NetWeight, m.GrossWeight, m.Tare, m.Type, m.Description, m.Date, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *ProductMovementRepo) GetByID(ctx context.Context, id string) (*entity.ProductMovement, error) {
	query := `
		SELECT id, operation_id, net_weight, gross_weight, tare, type, description, date, created_at, updated_at
		FROM product_movements WHERE id = $1`
	var m entity.ProductMovement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.OperationID, &m.NetWeight, &m.GrossWeight, &m.Tare, &m.Type, &m.Description, &m.Date, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product movement: %w", err)
	}
	return &m, nil
}

// ListByOperation lista los movimientos de producto de una operación por fecha.
func (r *ProductMovementRepo) ListByOperation(ctx context.Context, operationID string) ([]*entity.ProductMovement, error) {
	query := `
		SELECT id, operation_id, net_weight, gross_weight, tare, type, description, date, created_at, updated_at
		FROM product_movements WHERE operation_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("list product movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductMovement
	for rows.Next() {
		var m entity.ProductMovement
		if err := rows.Scan(&m.ID, &m.OperationID, &m.NetWeight, &m.GrossWeight, &m.Tare, &m.Type, &m.Description, &m.Date, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByOperation borra los movimientos de una operación (cascada del delete).
func (r *ProductMovementRepo) DeleteByOperation(ctx context.Context, operationID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_movements WHERE operation_id = $1`, operationID)
	if err != nil {
		return fmt.Errorf("delete product movements: %w", err)
	}
	return nil
}
