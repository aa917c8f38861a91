package dto

// RegisterRequest entrada para el registro público de usuarios.
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	RazonSocial string `json:"razonSocial" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

// RegisterResponse usuario creado más advertencias de notificación. Las fallas
// de correo degradan a warnings: nunca voltean el alta.
type RegisterResponse struct {
	User     UserResponse `json:"user"`
	Message  string       `json:"message,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginUser resumen del usuario en la respuesta de login.
type LoginUser struct {
	FirstName           string  `json:"firstName"`
	RazonSocial         string  `json:"razonSocial"`
	Email               string  `json:"email"`
	Role                string  `json:"role"`
	ClientEmail         *string `json:"clientEmail"`
	ClientID            *string `json:"clientId"`
	Owner               bool    `json:"owner"`
	OnboardingCompleted bool    `json:"onboarding_completed"`
}

// LoginResponse token de sesión más resumen del usuario.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// CurrentUserResponse datos mínimos del usuario autenticado.
type CurrentUserResponse struct {
	FirstName string  `json:"firstName"`
	ClientID  *string `json:"clientId"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
}

// ForgotPasswordRequest entrada para iniciar la recuperación.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse confirma el envío del link de recuperación.
type ForgotPasswordResponse struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// ResetPasswordRequest entrada para consumir el token de recuperación.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
