package entity

// Webuser es la credencial web legada, asociada opcionalmente a un User.
type Webuser struct {
	ID           int64
	PasswordHash string
	Email        string
	DefaultEmail string
	Role         string // default "User"
	Active       bool
	UserID       *int64
}

// Operator es una credencial de operador interno; solo sirve para el login de
// operadores, no emite token.
type Operator struct {
	ID           int64
	Email        string
	PasswordHash string
}

// Staff es el personal de soporte con su franja horaria.
type Staff struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	Zone       string
	StartShift int
	EndShift   int
	UserID     *int64
	User       *User
}
