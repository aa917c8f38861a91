package usecase

import (
	"context"
	"net/mail"

	"github.com/rs/zerolog/log"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/mailing"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserTxRunner ejecuta el alta combinada cliente + usuario en una transacción:
// nunca queda un Client huérfano si el alta del User falla.
type UserTxRunner interface {
	RunUserClient(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		clientRepo repository.ClientRepository,
	) error) error
}

// UserUseCase casos de uso de usuarios del portal: CRUD, alta en lote con
// fallas parciales y alta combinada cliente + usuario.
type UserUseCase struct {
	userRepo   repository.UserRepository
	clientRepo repository.ClientRepository
	txRunner   UserTxRunner
	mailer     ports.Mailer
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, clientRepo repository.ClientRepository, txRunner UserTxRunner, mailer ports.Mailer) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, clientRepo: clientRepo, txRunner: txRunner, mailer: mailer}
}

// List devuelve todos los usuarios con su clientInfo.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve un usuario con su clientInfo.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByIDWithClient(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Create crea un usuario individual. La contraseña, si viene, se hashea.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.ClientID != nil && *in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
	}
	hash := ""
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCliente
	}
	user := &entity.User{
		FirstName:           in.FirstName,
		RazonSocial:         in.RazonSocial,
		Email:               in.Email,
		PasswordHash:        hash,
		Role:                role,
		Status:              in.Status,
		Owner:               in.Owner,
		OnboardingCompleted: in.OnboardingCompleted,
		ClientID:            in.ClientID,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// BulkCreate procesa el lote secuencialmente y acumula resultados parciales.
// Un ítem fallido nunca aborta el resto del lote.
func (uc *UserUseCase) BulkCreate(in dto.BulkCreateUsersRequest) *dto.BulkCreateUsersResponse {
	resp := &dto.BulkCreateUsersResponse{
		Created: []dto.UserResponse{},
		Failed:  []dto.FailedUser{},
	}
	for _, item := range in.Users {
		created, err := uc.Create(item)
		if err != nil {
			item.Password = ""
			resp.Failed = append(resp.Failed, dto.FailedUser{UserData: item, Error: err.Error()})
			continue
		}
		resp.Created = append(resp.Created, *created)
	}
	resp.TotalCreated = len(resp.Created)
	resp.TotalFailed = len(resp.Failed)
	resp.Message = "Carga de usuarios procesada"
	return resp
}

// CreateWebUser alta combinada desde el panel: crea el Client y el User en una
// transacción y luego envía las credenciales por correo. El fallo del correo
// degrada a warnings en la respuesta, nunca revierte el alta.
func (uc *UserUseCase) CreateWebUser(ctx context.Context, in dto.WebUserRequest) (*dto.WebUserResponse, error) {
	if in.FirstName == "" || in.Email == "" || in.Password == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCliente
	}
	client := &entity.Client{
		ID:     in.ClientID,
		Info:   in.RazonSocial,
		Emails: []string{in.Email},
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		RazonSocial:  in.RazonSocial,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       in.Status,
		Owner:        in.Owner,
		ClientID:     &client.ID,
	}
	err = uc.txRunner.RunUserClient(ctx, func(userRepo repository.UserRepository, clientRepo repository.ClientRepository) error {
		existing, err := clientRepo.GetByID(client.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrConflict
		}
		dup, err := userRepo.GetByEmail(user.Email)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := clientRepo.Create(client); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	emailSent := true
	var warnings []string
	if err := uc.mailer.Send(mailing.WebCredentials(in.Email, in.Email, in.Password)); err != nil {
		log.Warn().Err(err).Str("email", in.Email).Msg("fallo el correo de credenciales")
		emailSent = false
		warnings = append(warnings, mailing.WarningFor("correo de credenciales", err))
	}
	user.ClientInfo = client
	return &dto.WebUserResponse{
		Message:       "Cliente y usuario creados",
		Client:        *toClientResponse(client),
		User:          *toUserResponse(user),
		EmailSent:     emailSent,
		EmailWarnings: warnings,
	}, nil
}

// Update aplica la actualización parcial y resuelve el cliente asociado:
// clientId explícito manda; si no, la tupla exacta (info, email) del cuerpo;
// sin coincidencia el usuario queda sin cliente. Nunca auto-crea un Client.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	switch {
	case in.ClientID != nil:
		if *in.ClientID == "" {
			user.ClientID = nil
		} else {
			client, err := uc.clientRepo.GetByID(*in.ClientID)
			if err != nil {
				return nil, err
			}
			if client == nil {
				return nil, domain.ErrClientNotFound
			}
			user.ClientID = in.ClientID
		}
	case in.Info != nil && in.Email != nil:
		client, err := uc.clientRepo.FindByInfoAndEmail(*in.Info, *in.Email)
		if err != nil {
			return nil, err
		}
		if client != nil {
			user.ClientID = &client.ID
		} else {
			user.ClientID = nil
		}
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.RazonSocial != nil {
		user.RazonSocial = *in.RazonSocial
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.Owner != nil {
		user.Owner = *in.Owner
	}
	if in.OnboardingCompleted != nil {
		user.OnboardingCompleted = *in.OnboardingCompleted
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	updated, err := uc.userRepo.GetByIDWithClient(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(updated), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

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
		resp.ClientInfo = toClientResponse(u.ClientInfo)
	}
	return resp
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	emails := c.Emails
	if emails == nil {
		emails = []string{}
	}
	return &dto.ClientResponse{
		ID:      c.ID,
		Email:   emails,
		Info:    c.Info,
		Vip:     c.Vip,
		Vipmail: c.Vipmail,
		Testing: c.Testing,
	}
}
