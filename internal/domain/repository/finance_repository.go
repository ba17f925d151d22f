package repository

import (
	"context"
	"time"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Expense, error)
	ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}

// IncomeRepository puerto de persistencia para Income.
type IncomeRepository interface {
	Create(ctx context.Context, i *entity.Income) error
	GetByID(ctx context.Context, id string) (*entity.Income, error)
	Update(ctx context.Context, i *entity.Income) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Income, error)
	ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Income, error)
	Delete(ctx context.Context, id string) error
}

// SaleRepository puerto de persistencia para Sale y sus pagos parciales.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Sale, error)
	CreatePayment(ctx context.Context, p *entity.SalePayment) error
	ListPayments(ctx context.Context, saleID string) ([]*entity.SalePayment, error)
	Delete(ctx context.Context, id string) error
}
