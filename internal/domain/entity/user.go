package entity

// Roles válidos para User.
const (
	RoleAdmin   = "Admin"
	RoleCliente = "Cliente"
)

// Estados de habilitación de User.
const (
	StatusPending = 0
	StatusEnabled = 1
)

// User representa un usuario del portal. Se crea con StatusPending y un
// administrador lo habilita después; ClientID es nulo hasta que se lo asocia
// a un Client existente (nunca se crea un cliente por inferencia).
type User struct {
	ID                  int64
	FirstName           string
	RazonSocial         string
	Email               string
	PasswordHash        string // bcrypt, nunca plano después de persistir
	Role                string // Admin | Cliente
	Status              int    // 0 pendiente, 1 habilitado
	Owner               bool
	OnboardingCompleted bool
	ClientID            *string // FK a clients.id, nullable
	ClientInfo          *Client // cargado bajo demanda por el repositorio
}
