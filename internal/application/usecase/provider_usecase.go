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

// ProviderUseCase CRUD de proveedores con visibilidad por usuario u organización.
type ProviderUseCase struct {
	providers repository.ProviderRepository
}

func NewProviderUseCase(providers repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{providers: providers}
}

func (uc *ProviderUseCase) Create(ctx context.Context, userID, orgID string, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	now := time.Now().UTC()
	p := &entity.Provider{
		ID:             uuid.NewString(),
		UserID:         userID,
		OrganizationID: orgID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := providerToResponse(p)
	return &resp, nil
}

func (uc *ProviderUseCase) Get(ctx context.Context, userID, orgID, id string) (*dto.ContactResponse, error) {
	p, err := uc.providers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !canAccess(userID, orgID, p.UserID, p.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	resp := providerToResponse(p)
	return &resp, nil
}

func (uc *ProviderUseCase) Update(ctx context.Context, userID, orgID, id string, req dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	p, err := uc.providers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !canAccess(userID, orgID, p.UserID, p.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := providerToResponse(p)
	return &resp, nil
}

func (uc *ProviderUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.ContactListResponse, error) {
	page.DefaultPage()
	items, err := uc.providers.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(items))
	for _, p := range items {
		out = append(out, providerToResponse(p))
	}
	return &dto.ContactListResponse{Items: out, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func (uc *ProviderUseCase) Delete(ctx context.Context, userID, orgID, id string) error {
	p, err := uc.providers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || !canAccess(userID, orgID, p.UserID, p.OrganizationID) {
		return domain.ErrNotFound
	}
	return uc.providers.Delete(ctx, id)
}

func providerToResponse(p *entity.Provider) dto.ContactResponse {
	return dto.ContactResponse{
		ID:             p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		Address:        p.Address,
		OrganizationID: p.OrganizationID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
