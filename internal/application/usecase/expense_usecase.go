package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

// ExpenseUseCase gastos del negocio o personales.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
}

func NewExpenseUseCase(expenses repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

func (uc *ExpenseUseCase) Create(ctx context.Context, userID, orgID string, req dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	e := &entity.Expense{
		ID:             uuid.NewString(),
		UserID:         userID,
		OrganizationID: orgID,
		Category:       req.Category,
		Amount:         req.Amount,
		Description:    req.Description,
		Date:           date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := expenseToResponse(e)
	return &resp, nil
}

func (uc *ExpenseUseCase) Get(ctx context.Context, userID, orgID, id string) (*dto.EntryResponse, error) {
	e, err := uc.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || !canAccess(userID, orgID, e.UserID, e.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	resp := expenseToResponse(e)
	return &resp, nil
}

func (uc *ExpenseUseCase) Update(ctx context.Context, userID, orgID, id string, req dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	e, err := uc.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || !canAccess(userID, orgID, e.UserID, e.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		e.Amount = *req.Amount
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	e.UpdatedAt = time.Now().UTC()
	if err := uc.expenses.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := expenseToResponse(e)
	return &resp, nil
}

func (uc *ExpenseUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.EntryListResponse, error) {
	page.DefaultPage()
	items, err := uc.expenses.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, expenseToResponse(e))
	}
	return &dto.EntryListResponse{Items: out, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, orgID, id string) error {
	e, err := uc.expenses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil || !canAccess(userID, orgID, e.UserID, e.OrganizationID) {
		return domain.ErrNotFound
	}
	return uc.expenses.Delete(ctx, id)
}

func expenseToResponse(e *entity.Expense) dto.EntryResponse {
	return dto.EntryResponse{
		ID:             e.ID,
		Category:       e.Category,
		Amount:         e.Amount,
		Description:    e.Description,
		Date:           e.Date,
		OrganizationID: e.OrganizationID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
