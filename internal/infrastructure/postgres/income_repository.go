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

var _ repository.IncomeRepository = (*IncomeRepo)(nil)

// IncomeRepo adaptador de persistencia para Income.
type IncomeRepo struct {
	q Querier
}

// NewIncomeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIncomeRepository(q Querier) *IncomeRepo {
	return &IncomeRepo{q: q}
}

// Create persiste un ingreso. ID duplicado → domain.ErrDuplicate.
func (r *IncomeRepo) Create(ctx context.Context, i *entity.Income) error {
	query := `
		INSERT INTO incomes (id, user_id, organization_id, category, amount, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.UserID, i.OrganizationID, i.Category, i.Amount, i.Description, i.Date, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert income: %w", err)
	}
	return nil
}

// GetByID obtiene un ingreso por ID. Devuelve (nil, nil) si no existe.
func (r *IncomeRepo) GetByID(ctx context.Context, id string) (*entity.Income, error) {
	query := `
		SELECT id, user_id, organization_id, category, amount, description, date, created_at, updated_at
		FROM incomes WHERE id = $1`
	var i entity.Income
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.UserID, &i.OrganizationID, &i.Category, &i.Amount, &i.Description, &i.Date, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get income: %w", err)
	}
	return &i, nil
}

// Update sobreescribe el registro completo.
func (r *IncomeRepo) Update(ctx context.Context, i *entity.Income) error {
	query := `
		UPDATE incomes SET category = $2, amount = $3, description = $4, date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, i.ID, i.Category, i.Amount, i.Description, i.Date, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update income: %w", err)
	}
	return nil
}

// ListByUser lista ingresos del usuario con paginación, más recientes primero.
func (r *IncomeRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Income, error) {
	query := `
		SELECT id, user_id, organization_id, category, amount, description, date, created_at, updated_at
		FROM incomes WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()
	return collectIncomes(rows)
}

// ListUpdatedSince devuelve los ingresos con updated_at posterior al checkpoint.
func (r *IncomeRepo) ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Income, error) {
	query := `
		SELECT id, user_id, organization_id, category, amount, description, date, created_at, updated_at
		FROM incomes WHERE user_id = $1 AND updated_at > $2 ORDER BY updated_at`
	rows, err := r.q.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list incomes since: %w", err)
	}
	defer rows.Close()
	return collectIncomes(rows)
}

// Delete elimina un ingreso por ID.
func (r *IncomeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return nil
}

func collectIncomes(rows pgx.Rows) ([]*entity.Income, error) {
	var list []*entity.Income
	for rows.Next() {
		var i entity.Income
		if err := rows.Scan(&i.ID, &i.UserID, &i.OrganizationID, &i.Category, &i.Amount, &i.Description, &i.Date, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
