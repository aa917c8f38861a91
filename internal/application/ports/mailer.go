package ports

import "fmt"

// Razones estructuradas de fallo de envío. Un fallo de correo nunca aborta la
// operación que lo origina: se degrada a warning en la respuesta.
const (
	ReasonMissingCredentials = "missing_credentials"
	ReasonAccessToken        = "access_token"
	ReasonEmptyToken         = "empty_token"
	ReasonSend               = "send"
)

// SendError describe por qué falló un envío de correo.
type SendError struct {
	Reason string
	Err    error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mailer: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("mailer: %s", e.Reason)
}

func (e *SendError) Unwrap() error { return e.Err }

// Mail es un correo saliente listo para despachar.
type Mail struct {
	To      []string
	Subject string
	HTML    string
}

// Mailer despacha correos transaccionales de la plataforma.
type Mailer interface {
	Send(mail Mail) error
}
