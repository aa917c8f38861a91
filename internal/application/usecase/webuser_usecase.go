package usecase

import (
	"github.com/rs/zerolog/log"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/mailing"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// WebuserUseCase credenciales web legadas. Los avisos de alta y de reset
// viajan por correo al defaultEmail de la credencial.
type WebuserUseCase struct {
	repo   repository.WebuserRepository
	mailer ports.Mailer
}

// NewWebuserUseCase construye el caso de uso.
func NewWebuserUseCase(repo repository.WebuserRepository, mailer ports.Mailer) *WebuserUseCase {
	return &WebuserUseCase{repo: repo, mailer: mailer}
}

// Create alta de webuser con la contraseña del cuerpo; el aviso va al
// defaultEmail.
func (uc *WebuserUseCase) Create(in dto.CreateWebuserRequest) (*dto.CreateWebuserResponse, error) {
	if in.Email == "" || in.DefaultEmail == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
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
	role := in.Role
	if role == "" {
		role = "User"
	}
	webuser := &entity.Webuser{
		PasswordHash: string(hash),
		Email:        in.Email,
		DefaultEmail: in.DefaultEmail,
		Role:         role,
		UserID:       in.UserID,
	}
	if err := uc.repo.Create(webuser); err != nil {
		return nil, err
	}

	emailSent := true
	var warnings []string
	if err := uc.mailer.Send(mailing.WebuserCreated(webuser.DefaultEmail, webuser.Email)); err != nil {
		log.Warn().Err(err).Str("email", webuser.DefaultEmail).Msg("fallo el correo de alta de webuser")
		emailSent = false
		warnings = append(warnings, mailing.WarningFor("correo de alta", err))
	}
	return &dto.CreateWebuserResponse{
		Message:   "Webuser creado",
		Webuser:   *toWebuserResponse(webuser),
		EmailSent: emailSent,
		Warnings:  warnings,
	}, nil
}

// List devuelve todas las credenciales web.
func (uc *WebuserUseCase) List() ([]dto.WebuserResponse, error) {
	webusers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toWebuserResponses(webusers), nil
}

// ListByUser devuelve las credenciales asociadas a un usuario del portal.
func (uc *WebuserUseCase) ListByUser(userID int64) ([]dto.WebuserResponse, error) {
	webusers, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toWebuserResponses(webusers), nil
}

// Reset envía el correo de restablecimiento al defaultEmail. No toca la
// contraseña almacenada: el cambio llega después por PUT.
func (uc *WebuserUseCase) Reset(email string) (*dto.WebuserResetResponse, error) {
	webuser, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if webuser == nil {
		return nil, domain.ErrNotFound
	}
	var warnings []string
	if err := uc.mailer.Send(mailing.WebuserPasswordReset(webuser.DefaultEmail, webuser.Email)); err != nil {
		log.Warn().Err(err).Str("email", webuser.DefaultEmail).Msg("fallo el correo de reset de webuser")
		warnings = append(warnings, mailing.WarningFor("correo de reset", err))
	}
	return &dto.WebuserResetResponse{
		Email:        webuser.Email,
		DefaultEmail: webuser.DefaultEmail,
		Warnings:     warnings,
	}, nil
}

// Update por email: con Role asigna rol y activa la credencial; si no y hay
// Password, la rehashea.
func (uc *WebuserUseCase) Update(in dto.UpdateWebuserRequest) (*dto.WebuserResponse, error) {
	webuser, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if webuser == nil {
		return nil, domain.ErrNotFound
	}
	switch {
	case in.Role != nil && *in.Role != "":
		if err := uc.repo.SetRole(in.Email, *in.Role); err != nil {
			return nil, err
		}
		webuser.Role = *in.Role
		webuser.Active = true
	case in.Password != nil && *in.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.UpdatePassword(in.Email, string(hash)); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	return toWebuserResponse(webuser), nil
}

func toWebuserResponse(w *entity.Webuser) *dto.WebuserResponse {
	if w == nil {
		return nil
	}
	return &dto.WebuserResponse{
		ID:           w.ID,
		Email:        w.Email,
		DefaultEmail: w.DefaultEmail,
		Role:         w.Role,
		Active:       w.Active,
		UserID:       w.UserID,
	}
}

func toWebuserResponses(webusers []*entity.Webuser) []dto.WebuserResponse {
	out := make([]dto.WebuserResponse, 0, len(webusers))
	for _, w := range webusers {
		out = append(out, *toWebuserResponse(w))
	}
	return out
}
