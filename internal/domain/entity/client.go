package entity

// Client es la empresa cliente. El ID es un código corto visible (dos letras y
// cuatro dígitos, ej. "AB1234") generado por el backend o asignado externamente.
// Emails es multivaluado: el primero de la lista actúa como email global.
type Client struct {
	ID      string
	Emails  []string
	Info    string // razón social / nombre visible
	Vip     string
	Vipmail string
	Testing bool
}

// GlobalEmail devuelve la primera dirección de la lista, o "" si no hay.
func (c *Client) GlobalEmail() string {
	if len(c.Emails) == 0 {
		return ""
	}
	return c.Emails[0]
}
