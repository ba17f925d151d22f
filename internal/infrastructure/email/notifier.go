// Package email implementa el puerto Notifier sobre SMTP (gomail).
// El envío corre en una goroutine: nunca bloquea la petición y un fallo
// de SMTP solo deja una línea en el log.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/ports"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/config"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/pkg/logger"
)

var _ ports.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía correos vía SMTP. Con Host vacío queda deshabilitado
// (modo development sin servidor de correo).
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPNotifier construye el notifier.
func NewSMTPNotifier(cfg config.SMTPConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log}
}

// SendWelcome envía el correo de bienvenida tras el registro.
func (n *SMTPNotifier) SendWelcome(toEmail, name string) {
	subject := "Bienvenido a Vraen"
	body := fmt.Sprintf("Hola %s,\n\nTu cuenta fue creada. Ya puedes registrar tus operaciones y sincronizar tus dispositivos.", name)
	n.send(toEmail, subject, body)
}

// SendOperationClosed avisa al dueño que su operación quedó cerrada.
func (n *SMTPNotifier) SendOperationClosed(toEmail, operationNumber string) {
	subject := fmt.Sprintf("Operación %s cerrada", operationNumber)
	body := fmt.Sprintf("La operación %s fue cerrada. No admite más movimientos.", operationNumber)
	n.send(toEmail, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) {
	if n.cfg.Host == "" {
		n.log.Debug().Str("to", to).Str("subject", subject).Msg("smtp deshabilitado, correo omitido")
		return
	}
	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", n.cfg.From)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
		if err := d.DialAndSend(m); err != nil {
			n.log.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("envío de correo falló")
		}
	}()
}
