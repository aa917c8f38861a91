package mailing

import (
	"errors"
	"fmt"
	"html"

	"github.com/siges-soporte/siges-api/internal/application/ports"
)

// Welcome correo de bienvenida al registrarse. La cuenta queda pendiente de
// habilitación por un administrador.
func Welcome(to, firstName string) ports.Mail {
	name := html.EscapeString(firstName)
	return ports.Mail{
		To:      []string{to},
		Subject: "Bienvenido a SIGES Soporte",
		HTML: fmt.Sprintf(`<h2>Hola %s</h2>
<p>Tu cuenta fue creada correctamente y está pendiente de habilitación.</p>
<p>Te avisaremos por este medio cuando puedas ingresar al portal.</p>
<p>Equipo de Soporte SIGES</p>`, name),
	}
}

// AdminNewUser aviso a los administradores de un registro nuevo.
func AdminNewUser(admins []string, firstName, razonSocial, email string) ports.Mail {
	return ports.Mail{
		To:      admins,
		Subject: "Nuevo usuario registrado",
		HTML: fmt.Sprintf(`<h2>Nuevo registro en el portal</h2>
<ul>
<li><b>Nombre:</b> %s</li>
<li><b>Razón social:</b> %s</li>
<li><b>Email:</b> %s</li>
</ul>
<p>El usuario queda pendiente de habilitación.</p>`,
			html.EscapeString(firstName), html.EscapeString(razonSocial), html.EscapeString(email)),
	}
}

// PasswordReset correo con el link de recuperación de contraseña.
func PasswordReset(to, link string) ports.Mail {
	return ports.Mail{
		To:      []string{to},
		Subject: "Recuperación de contraseña",
		HTML: fmt.Sprintf(`<h2>Recuperación de contraseña</h2>
<p>Recibimos una solicitud para restablecer tu contraseña.</p>
<p><a href="%s">Restablecer contraseña</a></p>
<p>El enlace vence en una hora. Si no fuiste vos, ignorá este correo.</p>`, link),
	}
}

// WebCredentials correo con las credenciales de un usuario dado de alta desde
// el panel. La contraseña viaja en claro una única vez.
func WebCredentials(to, email, password string) ports.Mail {
	return ports.Mail{
		To:      []string{to},
		Subject: "Tus credenciales de acceso",
		HTML: fmt.Sprintf(`<h2>Alta de usuario</h2>
<p>Se creó tu cuenta en el portal de soporte.</p>
<ul>
<li><b>Usuario:</b> %s</li>
<li><b>Contraseña:</b> %s</li>
</ul>
<p>Te recomendamos cambiarla al ingresar.</p>`,
			html.EscapeString(email), html.EscapeString(password)),
	}
}

// WebuserCreated aviso de alta de una credencial web al defaultEmail. La
// contraseña la eligió quien dio el alta, así que no viaja en el correo.
func WebuserCreated(to, email string) ports.Mail {
	return ports.Mail{
		To:      []string{to},
		Subject: "Alta de credencial web",
		HTML: fmt.Sprintf(`<h2>Alta de credencial</h2>
<p>Se creó la credencial <b>%s</b> en el panel web de soporte.</p>
<p>Si no reconocés este alta, contactá al equipo de soporte.</p>`,
			html.EscapeString(email)),
	}
}

// WebuserPasswordReset aviso de solicitud de restablecimiento para una
// credencial web. No cambia nada por sí solo.
func WebuserPasswordReset(to, email string) ports.Mail {
	return ports.Mail{
		To:      []string{to},
		Subject: "Restablecimiento de contraseña solicitado",
		HTML: fmt.Sprintf(`<h2>Restablecimiento de contraseña</h2>
<p>Se solicitó restablecer la contraseña de la credencial <b>%s</b>.</p>
<p>Un operador se va a contactar para completar el cambio. Si no fuiste vos,
avisá al equipo de soporte.</p>`,
			html.EscapeString(email)),
	}
}

// WarningFor traduce un fallo de envío a la advertencia que viaja en la
// respuesta. El contexto identifica qué correo falló.
func WarningFor(context string, err error) string {
	var se *ports.SendError
	if errors.As(err, &se) {
		switch se.Reason {
		case ports.ReasonMissingCredentials:
			return fmt.Sprintf("%s: credenciales de correo no configuradas", context)
		case ports.ReasonAccessToken:
			return fmt.Sprintf("%s: no se pudo obtener el access token de Gmail", context)
		case ports.ReasonEmptyToken:
			return fmt.Sprintf("%s: Gmail devolvió un access token vacío", context)
		}
	}
	return fmt.Sprintf("%s: fallo el envío del correo", context)
}
