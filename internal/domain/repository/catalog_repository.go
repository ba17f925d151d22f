package repository

import (
	"context"
	"time"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

// ProviderRepository puerto de persistencia para Provider.
type ProviderRepository interface {
	Create(ctx context.Context, p *entity.Provider) error
	GetByID(ctx context.Context, id string) (*entity.Provider, error)
	Update(ctx context.Context, p *entity.Provider) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Provider, error)
	ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Provider, error)
	Delete(ctx context.Context, id string) error
}

// ClientRepository puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Client, error)
	ListUpdatedSince(ctx context.Context, userID string, since time.Time) ([]*entity.Client, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository puerto de persistencia para el catálogo de productos.
// Conjunto chico y estable: el pull lo envía completo, sin delta.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
