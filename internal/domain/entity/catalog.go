package entity

import "time"

// Provider proveedor al que se le compran operaciones.
type Provider struct {
	ID             string
	UserID         string
	OrganizationID string // vacío = personal
	Name           string
	Phone          string
	Email          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Client comprador en las ventas del usuario.
type Client struct {
	ID             string
	UserID         string
	OrganizationID string
	Name           string
	Phone          string
	Email          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Product catálogo de referencia: qué se compra y se vende.
// Conjunto pequeño y estable; el pull lo envía siempre completo.
type Product struct {
	ID          string
	UserID      string
	Name        string
	Unit        string // kg, unidad, arroba...
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
