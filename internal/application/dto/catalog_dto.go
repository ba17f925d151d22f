package dto

import "time"

// CreateContactRequest alta de proveedor o cliente (misma forma).
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// UpdateContactRequest campos editables de proveedor o cliente.
type UpdateContactRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// ContactResponse proveedor o cliente expuesto al cliente HTTP.
type ContactResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	OrganizationID string    `json:"organizationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ContactListResponse listado paginado de proveedores o clientes.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateProductRequest alta de producto de catálogo.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// UpdateProductRequest campos editables del producto.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
}

// ProductResponse producto expuesto al cliente HTTP.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductListResponse catálogo completo del usuario.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
