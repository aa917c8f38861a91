package dto

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID                  int64           `json:"id"`
	FirstName           string          `json:"firstName"`
	RazonSocial         string          `json:"razonSocial"`
	Email               string          `json:"email"`
	Role                string          `json:"role"`
	Status              int             `json:"status"`
	Owner               bool            `json:"owner"`
	OnboardingCompleted bool            `json:"onboarding_completed"`
	ClientID            *string         `json:"clientId"`
	ClientInfo          *ClientResponse `json:"clientInfo,omitempty"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	FirstName           string  `json:"firstName"`
	RazonSocial         string  `json:"razonSocial"`
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Role                string  `json:"role"`
	Status              int     `json:"status"`
	Owner               bool    `json:"owner"`
	OnboardingCompleted bool    `json:"onboarding_completed"`
	ClientID            *string `json:"clientId"`
}

// BulkCreateUsersRequest alta en lote: se procesa secuencialmente y acumula
// resultados parciales en vez de abortar ante el primer error.
type BulkCreateUsersRequest struct {
	Bulk  bool                `json:"bulk"`
	Users []CreateUserRequest `json:"users"`
}

// FailedUser detalle de un ítem fallido del lote.
type FailedUser struct {
	UserData CreateUserRequest `json:"userData"`
	Error    string            `json:"error"`
}

// BulkCreateUsersResponse resultado parcial del alta en lote.
type BulkCreateUsersResponse struct {
	Message      string         `json:"message"`
	Created      []UserResponse `json:"created"`
	Failed       []FailedUser   `json:"failed"`
	TotalCreated int            `json:"totalCreated"`
	TotalFailed  int            `json:"totalFailed"`
}

// UpdateUserRequest entrada del PUT de usuario. Info y Email (datos del
// cliente) disparan la resolución de cliente; el resto son campos del usuario.
// Los punteros distinguen "no enviado" de "enviado en cero".
type UpdateUserRequest struct {
	Info                *string `json:"info"`
	Email               *string `json:"email"`
	FirstName           *string `json:"firstName"`
	RazonSocial         *string `json:"razonSocial"`
	Role                *string `json:"role"`
	Status              *int    `json:"status"`
	Owner               *bool   `json:"owner"`
	OnboardingCompleted *bool   `json:"onboarding_completed"`
	ClientID            *string `json:"clientId"`
}

// WebUserRequest alta combinada de cliente + usuario desde la web.
type WebUserRequest struct {
	FirstName   string `json:"firstName"`
	RazonSocial string `json:"razonSocial"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Status      int    `json:"status"`
	ClientID    string `json:"clientId"`
	Owner       bool   `json:"owner"`
}

// WebUserResponse resultado del alta combinada.
type WebUserResponse struct {
	Message       string         `json:"message"`
	Client        ClientResponse `json:"client"`
	User          UserResponse   `json:"user"`
	EmailSent     bool           `json:"emailSent"`
	EmailWarnings []string       `json:"emailWarnings,omitempty"`
}
