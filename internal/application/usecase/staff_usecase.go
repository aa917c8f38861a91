package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// StaffUseCase lectura del personal de soporte y sus turnos.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// List devuelve el staff completo o el asociado a un usuario.
func (uc *StaffUseCase) List(userID int64) ([]dto.StaffResponse, error) {
	var staffs []*entity.Staff
	var err error
	if userID > 0 {
		staffs, err = uc.repo.ListByUser(userID)
	} else {
		staffs, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(staffs))
	for _, s := range staffs {
		out = append(out, *toStaffResponse(s))
	}
	return out, nil
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:         s.ID,
		Name:       s.Name,
		Phone:      s.Phone,
		Email:      s.Email,
		Zone:       s.Zone,
		StartShift: s.StartShift,
		EndShift:   s.EndShift,
		UserID:     s.UserID,
		User:       toUserResponse(s.User),
	}
}
