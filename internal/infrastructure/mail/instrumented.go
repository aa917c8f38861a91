package mail

import (
	"errors"

	"github.com/siges-soporte/siges-api/internal/application/ports"
)

// instrumented cuenta los fallos de envío por razón antes de propagarlos.
type instrumented struct {
	next      ports.Mailer
	onFailure func(reason string)
}

// Instrument decora un Mailer reportando cada fallo (por razón clasificada)
// al callback recibido, típicamente el contador de métricas.
func Instrument(next ports.Mailer, onFailure func(reason string)) ports.Mailer {
	return &instrumented{next: next, onFailure: onFailure}
}

func (m *instrumented) Send(msg ports.Mail) error {
	err := m.next.Send(msg)
	if err != nil && m.onFailure != nil {
		reason := "unknown"
		var se *ports.SendError
		if errors.As(err, &se) {
			reason = se.Reason
		}
		m.onFailure(reason)
	}
	return err
}
