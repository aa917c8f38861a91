package dto

// WebuserResponse usuario del panel web de soporte.
type WebuserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	DefaultEmail string `json:"defaultEmail"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	UserID       *int64 `json:"userId"`
}

// CreateWebuserRequest alta de webuser. La contraseña viene en el cuerpo y se
// almacena hasheada; el aviso de alta va al defaultEmail.
type CreateWebuserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	DefaultEmail string `json:"defaultEmail" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	Role         string `json:"role"`
	UserID       *int64 `json:"userId"`
}

// CreateWebuserResponse resultado del alta con el estado del correo.
type CreateWebuserResponse struct {
	Message   string          `json:"message"`
	Webuser   WebuserResponse `json:"webuser"`
	EmailSent bool            `json:"emailSent"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// UpdateWebuserRequest actualización por email. Con Role setea el rol y
// activa la cuenta; sin Role y con Password, cambia la contraseña.
type UpdateWebuserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// OperatorResponse operador del panel de tickets.
type OperatorResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CreateOperatorRequest alta de operador.
type CreateOperatorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// OperatorLoginRequest credenciales de operador.
type OperatorLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OperatorLoginResponse confirma las credenciales; el login de operadores no
// emite token.
type OperatorLoginResponse struct {
	Message  string           `json:"message"`
	Operator OperatorResponse `json:"operator"`
}

// WebuserResetResponse confirma el reenvío de contraseña a un webuser.
type WebuserResetResponse struct {
	Email        string   `json:"email"`
	DefaultEmail string   `json:"defaultEmail"`
	Warnings     []string `json:"warnings,omitempty"`
}

// StaffResponse integrante del equipo de soporte con su turno.
type StaffResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Zone       string        `json:"zone"`
	StartShift int           `json:"startShift"`
	EndShift   int           `json:"endShift"`
	UserID     *int64        `json:"userId"`
	User       *UserResponse `json:"user,omitempty"`
}

// RecommendationResponse recomendación publicada en el portal.
type RecommendationResponse struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Image string   `json:"image"`
	Flags []string `json:"flags"`
}

// CreateRecommendationRequest alta de recomendación.
type CreateRecommendationRequest struct {
	Title string   `json:"title" validate:"required"`
	Text  string   `json:"text"`
	Image string   `json:"image"`
	Flags []string `json:"flags"`
}

// UpdateRecommendationRequest actualización parcial de recomendación.
type UpdateRecommendationRequest struct {
	Title *string  `json:"title"`
	Text  *string  `json:"text"`
	Image *string  `json:"image"`
	Flags []string `json:"flags"`
}
