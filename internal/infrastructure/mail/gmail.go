package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/gomail.v2"
)

var _ ports.Mailer = (*GmailMailer)(nil)

// GmailMailer despacha correo por smtp.gmail.com autenticando con XOAUTH2.
// El refresh token de la cuenta remitente se canjea por un access token en
// cada envío (el TokenSource cachea hasta el expiry).
type GmailMailer struct {
	cfg    config.MailConfig
	tokens oauth2.TokenSource
}

// NewGmailMailer construye el mailer con las credenciales inyectadas desde
// la configuración.
func NewGmailMailer(cfg config.MailConfig) *GmailMailer {
	m := &GmailMailer{cfg: cfg}
	if cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.RefreshToken != "" {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"https://mail.google.com/"},
		}
		m.tokens = conf.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.RefreshToken})
	}
	return m
}

// Send despacha un correo. Los fallos salen como *ports.SendError con la
// razón estructurada para que el caller decida si degrada a warning.
func (m *GmailMailer) Send(mail ports.Mail) error {
	if m.cfg.User == "" || m.tokens == nil {
		return &ports.SendError{Reason: ports.ReasonMissingCredentials}
	}
	tok, err := m.tokens.Token()
	if err != nil {
		return &ports.SendError{Reason: ports.ReasonAccessToken, Err: err}
	}
	if tok.AccessToken == "" {
		return &ports.SendError{Reason: ports.ReasonEmptyToken}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", mail.To...)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.User, "")
	d.Auth = &xoauth2Auth{user: m.cfg.User, token: tok.AccessToken}
	if err := d.DialAndSend(msg); err != nil {
		return &ports.SendError{Reason: ports.ReasonSend, Err: err}
	}
	return nil
}

// xoauth2Auth implementa el mecanismo SASL XOAUTH2 que exige Gmail cuando se
// autentica con access token en vez de contraseña.
type xoauth2Auth struct {
	user  string
	token string
}

func (a *xoauth2Auth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	resp := fmt.Sprintf("user=%s\x01auth=Bearer %s\x01\x01", a.user, a.token)
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		// El servidor manda el detalle del error en base64; responder vacío
		// cierra el intercambio y deja que el comando falle con el error real.
		return []byte(""), nil
	}
	return nil, nil
}
