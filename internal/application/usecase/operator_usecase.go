package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// OperatorUseCase operadores internos. El login solo verifica credenciales,
// no emite token: el panel de operadores mantiene su propia sesión.
type OperatorUseCase struct {
	repo repository.OperatorRepository
}

// NewOperatorUseCase construye el caso de uso.
func NewOperatorUseCase(repo repository.OperatorRepository) *OperatorUseCase {
	return &OperatorUseCase{repo: repo}
}

// Create alta de operador con password bcrypt.
func (uc *OperatorUseCase) Create(in dto.CreateOperatorRequest) (*dto.OperatorResponse, error) {
	if in.Email == "" || len(in.Password) < 6 {
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
	operator := &entity.Operator{Email: in.Email, PasswordHash: string(hash)}
	if err := uc.repo.Create(operator); err != nil {
		return nil, err
	}
	return toOperatorResponse(operator), nil
}

// List devuelve todos los operadores, o uno por email.
func (uc *OperatorUseCase) List(email string) ([]dto.OperatorResponse, error) {
	if email != "" {
		operator, err := uc.repo.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if operator == nil {
			return nil, domain.ErrNotFound
		}
		return []dto.OperatorResponse{*toOperatorResponse(operator)}, nil
	}
	operators, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperatorResponse, 0, len(operators))
	for _, o := range operators {
		out = append(out, *toOperatorResponse(o))
	}
	return out, nil
}

// Login verifica email y contraseña.
func (uc *OperatorUseCase) Login(in dto.OperatorLoginRequest) (*dto.OperatorLoginResponse, error) {
	operator, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.OperatorLoginResponse{
		Message:  "Login correcto",
		Operator: *toOperatorResponse(operator),
	}, nil
}

func toOperatorResponse(o *entity.Operator) *dto.OperatorResponse {
	if o == nil {
		return nil
	}
	return &dto.OperatorResponse{ID: o.ID, Email: o.Email}
}
