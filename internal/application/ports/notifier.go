package ports

// Notifier puerto de notificaciones por correo. Fire-and-forget: las
// implementaciones no bloquean al caller y los fallos solo se loguean.
type Notifier interface {
	SendWelcome(toEmail, name string)
	SendOperationClosed(toEmail, operationNumber string)
}
