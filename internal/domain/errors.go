package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrNotFound cubre tanto "no existe" como "no es tuyo": el API no
// distingue ambos casos para no revelar la existencia de recursos ajenos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrOperationClosed    = errors.New("la operación está cerrada")
	ErrUnavailable        = errors.New("almacenamiento no disponible")
)
