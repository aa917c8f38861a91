package entity

// Ticket es un ticket del portal, asociado a un User.
type Ticket struct {
	ID     int64
	UserID int64
}

// Botticket es un ticket originado por el bot, asociado a un Client.
type Botticket struct {
	ID       int64
	ClientID string
}

// Opticket es un ticket interno de operadores.
type Opticket struct {
	ID       int64
	Name     string
	Client   string
	Detail   string
	Resolved bool
}
