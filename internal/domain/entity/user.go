package entity

import "time"

// Roles dentro de una organización.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// User cuenta de la aplicación. OrganizationID apunta a la organización
// activa (vacío si trabaja solo).
type User struct {
	ID             string
	Email          string
	PasswordHash   string
	Name           string
	OrganizationID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Organization espacio compartido opcional para acceso colaborativo.
type Organization struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrganizationMember membresía única por (organización, usuario).
type OrganizationMember struct {
	OrganizationID string
	UserID         string
	Role           string // owner | member
	CreatedAt      time.Time
}
