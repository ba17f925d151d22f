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

// ClientUseCase CRUD de clientes (compradores de las ventas).
type ClientUseCase struct {
	clients repository.ClientRepository
}

func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

func (uc *ClientUseCase) Create(ctx context.Context, userID, orgID string, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	now := time.Now().UTC()
	c := &entity.Client{
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
	if err := uc.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clientToResponse(c)
	return &resp, nil
}

func (uc *ClientUseCase) Get(ctx context.Context, userID, orgID, id string) (*dto.ContactResponse, error) {
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !canAccess(userID, orgID, c.UserID, c.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	resp := clientToResponse(c)
	return &resp, nil
}

func (uc *ClientUseCase) Update(ctx context.Context, userID, orgID, id string, req dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !canAccess(userID, orgID, c.UserID, c.OrganizationID) {
		return nil, domain.ErrNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	c.UpdatedAt = time.Now().UTC()
	if err := uc.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := clientToResponse(c)
	return &resp, nil
}

func (uc *ClientUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.ContactListResponse, error) {
	page.DefaultPage()
	items, err := uc.clients.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(items))
	for _, c := range items {
		out = append(out, clientToResponse(c))
	}
	return &dto.ContactListResponse{Items: out, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func (uc *ClientUseCase) Delete(ctx context.Context, userID, orgID, id string) error {
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil || !canAccess(userID, orgID, c.UserID, c.OrganizationID) {
		return domain.ErrNotFound
	}
	return uc.clients.Delete(ctx, id)
}

func clientToResponse(c *entity.Client) dto.ContactResponse {
	return dto.ContactResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		OrganizationID: c.OrganizationID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
