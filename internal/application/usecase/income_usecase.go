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

// IncomeUseCase ingresos no ligados a ventas.
type IncomeUseCase struct {
	incomes repository.IncomeRepository
}

func NewIncomeUseCase(incomes repository.IncomeRepository) *IncomeUseCase {
	return &IncomeUseCase{incomes: incomes}
}

func (uc *IncomeUseCase) Create(ctx context.Context, userID, orgID string, req dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	i := &entity.Income{
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
	if err := uc.incomes.Create(ctx, i); err != nil {
		return nil, err
	}
	resp := incomeToResponse(i)
	return &resp, nil
}

func (uc *IncomeUseCase) Get(ctx context.Context, userID, orgID, id string) (*dto.EntryResponse, error) {
	i, err := uc.incomes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil || !canAccess(userID, orgID, i.UserID, i.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	resp := incomeToResponse(i)
	return &resp, nil
}

func (uc *IncomeUseCase) Update(ctx context.Context, userID, orgID, id string, req dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	i, err := uc.incomes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil || !canAccess(userID, orgID, i.UserID, i.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	if req.Category != nil {
		i.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		i.Amount = *req.Amount
	}
	if req.Description != nil {
		i.Description = *req.Description
	}
	if req.Date != nil {
		i.Date = *req.Date
	}
	i.UpdatedAt = time.Now().UTC()
	if err := uc.incomes.Update(ctx, i); err != nil {
		return nil, err
	}
	resp := incomeToResponse(i)
	return &resp, nil
}

func (uc *IncomeUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.EntryListResponse, error) {
	page.DefaultPage()
	items, err := uc.incomes.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, incomeToResponse(i))
	}
	return &dto.EntryListResponse{Items: out, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func (uc *IncomeUseCase) Delete(ctx context.Context, userID, orgID, id string) error {
	i, err := uc.incomes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if i == nil || !canAccess(userID, orgID, i.UserID, i.OrganizationID) {
		return domain.ErrNotFound
	}
	return uc.incomes.Delete(ctx, id)
}

func incomeToResponse(i *entity.Income) dto.EntryResponse {
	return dto.EntryResponse{
		ID:             i.ID,
		Category:       i.Category,
		Amount:         i.Amount,
		Description:    i.Description,
		Date:           i.Date,
		OrganizationID: i.OrganizationID,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
