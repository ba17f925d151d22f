package repository

import (
	"context"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

// OrganizationRepository puerto de persistencia para Organization y su membresía.
type OrganizationRepository interface {
	Create(ctx context.Context, o *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	// AddMember devuelve domain.ErrDuplicate si (org, user) ya existe.
	AddMember(ctx context.Context, m *entity.OrganizationMember) error
	IsMember(ctx context.Context, organizationID, userID string) (bool, error)
	ListMembers(ctx context.Context, organizationID string) ([]*entity.OrganizationMember, error)
}
