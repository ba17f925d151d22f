package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/dto"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/repository"
)

// ProductUseCase catálogo de productos del usuario.
type ProductUseCase struct {
	products repository.ProductRepository
}

func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

func (uc *ProductUseCase) Create(ctx context.Context, userID string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now().UTC()
	p := &entity.Product{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Unit:        req.Unit,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (uc *ProductUseCase) Get(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

// List devuelve el catálogo completo: es chico y estable.
func (uc *ProductUseCase) List(ctx context.Context, userID string) (*dto.ProductListResponse, error) {
	items, err := uc.products.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, productToResponse(p))
	}
	return &dto.ProductListResponse{Items: out}, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || p.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, id)
}

func productToResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Unit:        p.Unit,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
