package auth

import (
	"fmt"

	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/mailing"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
	"github.com/siges-soporte/siges-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación del portal: registro público, login, recuperación
// de contraseña y habilitación de cuentas.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	clientRepo   repository.ClientRepository
	mailer       ports.Mailer
	jwtCfg       JWTConfig
	adminEmails  []string
	frontendBase string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, clientRepo repository.ClientRepository, mailer ports.Mailer, jwtCfg JWTConfig, adminEmails []string, frontendBase string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		mailer:       mailer,
		jwtCfg:       jwtCfg,
		adminEmails:  adminEmails,
		frontendBase: frontendBase,
	}
}

// Register registra un usuario público. La cuenta nace deshabilitada (status 0)
// hasta que un administrador la habilite. Los correos de aviso son best-effort:
// si fallan, el alta igual se confirma y el fallo viaja como warning.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		RazonSocial:  in.RazonSocial,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCliente,
		Status:       entity.StatusPending,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	var warnings []string
	if err := uc.mailer.Send(mailing.Welcome(user.Email, user.FirstName)); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("fallo el correo de bienvenida")
		warnings = append(warnings, mailing.WarningFor("correo de bienvenida", err))
	}
	if len(uc.adminEmails) > 0 {
		if err := uc.mailer.Send(mailing.AdminNewUser(uc.adminEmails, user.FirstName, user.RazonSocial, user.Email)); err != nil {
			log.Warn().Err(err).Msg("fallo el aviso de registro a administradores")
			warnings = append(warnings, mailing.WarningFor("aviso a administradores", err))
		}
	}
	return &dto.RegisterResponse{
		User:     *toUserResponse(user),
		Message:  "Usuario registrado. Pendiente de habilitación.",
		Warnings: warnings,
	}, nil
}

// Login verifica credenciales y emite el token de sesión. Cuentas pendientes
// de habilitación no pueden ingresar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusEnabled {
		return nil, domain.ErrUserDisabled
	}

	clientID := ""
	var clientEmail *string
	if user.ClientID != nil {
		clientID = *user.ClientID
		client, err := uc.clientRepo.GetByID(*user.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			if addr := client.GlobalEmail(); addr != "" {
				clientEmail = &addr
			}
		}
	}
	token, err := jwt.GenerateSession(uc.jwtCfg.Secret, user.ID, user.Role, user.Email, clientID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			FirstName:           user.FirstName,
			RazonSocial:         user.RazonSocial,
			Email:               user.Email,
			Role:                user.Role,
			ClientEmail:         clientEmail,
			ClientID:            user.ClientID,
			Owner:               user.Owner,
			OnboardingCompleted: user.OnboardingCompleted,
		},
	}, nil
}

// CurrentUser devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) CurrentUser(userID int64) (*dto.CurrentUserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.CurrentUserResponse{
		FirstName: user.FirstName,
		ClientID:  user.ClientID,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}

// Enable habilita una cuenta pendiente. Es idempotente.
func (uc *AuthUseCase) Enable(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != entity.StatusEnabled {
		if err := uc.userRepo.SetStatus(userID, entity.StatusEnabled); err != nil {
			return nil, err
		}
		user.Status = entity.StatusEnabled
	}
	return toUserResponse(user), nil
}

// ForgotPassword genera un token de recuperación y envía el link por correo.
// El email debe pertenecer a un usuario registrado. El fallo del correo no
// cancela la operación: el token ya fue emitido y el fallo viaja como warning.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	token, err := jwt.GenerateReset(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, 60)
	if err != nil {
		return nil, err
	}
	link := fmt.Sprintf("%s/?resetToken=%s#inicio", uc.frontendBase, token)

	var warnings []string
	if err := uc.mailer.Send(mailing.PasswordReset(user.Email, link)); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("fallo el correo de recuperación")
		warnings = append(warnings, mailing.WarningFor("correo de recuperación", err))
	}
	return &dto.ForgotPasswordResponse{
		Message:  "Correo de recuperación enviado",
		Warnings: warnings,
	}, nil
}

// ResetPassword consume el token de recuperación y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < 6 {
		return domain.ErrInvalidInput
	}
	claims, err := jwt.ParseReset(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

// toUserResponse mapea la entidad a su DTO de salida.
func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:                  u.ID,
		FirstName:           u.FirstName,
		RazonSocial:         u.RazonSocial,
		Email:               u.Email,
		Role:                u.Role,
		Status:              u.Status,
		Owner:               u.Owner,
		OnboardingCompleted: u.OnboardingCompleted,
		ClientID:            u.ClientID,
	}
	if u.ClientInfo != nil {
		resp.ClientInfo = &dto.ClientResponse{
			ID:      u.ClientInfo.ID,
			Email:   u.ClientInfo.Emails,
			Info:    u.ClientInfo.Info,
			Vip:     u.ClientInfo.Vip,
			Vipmail: u.ClientInfo.Vipmail,
			Testing: u.ClientInfo.Testing,
		}
	}
	return resp
}
