package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// RecommendationUseCase recomendaciones publicadas en el portal.
type RecommendationUseCase struct {
	repo repository.RecommendationRepository
}

// NewRecommendationUseCase construye el caso de uso.
func NewRecommendationUseCase(repo repository.RecommendationRepository) *RecommendationUseCase {
	return &RecommendationUseCase{repo: repo}
}

// Create publica una recomendación.
func (uc *RecommendationUseCase) Create(in dto.CreateRecommendationRequest) (*dto.RecommendationResponse, error) {
	if in.Title == "" || in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	rec := &entity.Recommendation{
		Title: in.Title,
		Text:  in.Text,
		Image: in.Image,
		Flags: in.Flags,
	}
	if err := uc.repo.Create(rec); err != nil {
		return nil, err
	}
	return toRecommendationResponse(rec), nil
}

// List devuelve todas las recomendaciones.
func (uc *RecommendationUseCase) List() ([]dto.RecommendationResponse, error) {
	recs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, *toRecommendationResponse(r))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *RecommendationUseCase) Update(id int64, in dto.UpdateRecommendationRequest) (*dto.RecommendationResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		rec.Title = *in.Title
	}
	if in.Text != nil {
		rec.Text = *in.Text
	}
	if in.Image != nil {
		rec.Image = *in.Image
	}
	if in.Flags != nil {
		rec.Flags = in.Flags
	}
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return toRecommendationResponse(rec), nil
}

// Delete elimina una recomendación.
func (uc *RecommendationUseCase) Delete(id int64) error {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toRecommendationResponse(r *entity.Recommendation) *dto.RecommendationResponse {
	if r == nil {
		return nil
	}
	flags := r.Flags
	if flags == nil {
		flags = []string{}
	}
	return &dto.RecommendationResponse{
		ID:    r.ID,
		Title: r.Title,
		Text:  r.Text,
		Image: r.Image,
		Flags: flags,
	}
}
