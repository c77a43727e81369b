package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

var (
	ErrParamOptionNotFound = errors.New("opção de parâmetro não encontrada")
	ErrInvalidParamID      = errors.New("id de opção inválido")
	ErrInvalidParamData    = errors.New("categoria ou valor de parâmetro inválido")
	ErrParamOptionExists   = errors.New("opção já cadastrada para esta categoria")
)

// IParamOptionUseCase exposes the configurable proposal parameter options
// (payment terms, delivery, freight, validity, warranties).

type IParamOptionUseCase interface {
	Create(ctx context.Context, category entities.ParamCategory, label, createdByID string) (entities.ParamOption, error)
	ListByCategory(ctx context.Context, category entities.ParamCategory) ([]entities.ParamOption, error)
	Delete(ctx context.Context, id string) error
}

type ParamOptionUseCase struct {
	repo interfaces.IParamOptionRepository
}

var _ IParamOptionUseCase = (*ParamOptionUseCase)(nil)

func NewParamOptionUseCase(repo interfaces.IParamOptionRepository) *ParamOptionUseCase {
	return &ParamOptionUseCase{repo: repo}
}

func (u *ParamOptionUseCase) Create(ctx context.Context, category entities.ParamCategory, label, createdByID string) (entities.ParamOption, error) {
	label = strings.TrimSpace(label)
	if label == "" || !entities.ValidParamCategory(category) {
		return entities.ParamOption{}, ErrInvalidParamData
	}

	// (category, label) pairs stay unique.
	existing, err := u.repo.ListByCategory(ctx, category)
	if err != nil {
		return entities.ParamOption{}, err
	}
	for _, o := range existing {
		if strings.EqualFold(o.Label, label) {
			return entities.ParamOption{}, ErrParamOptionExists
		}
	}

	o := entities.ParamOption{
		ID:          uuid.NewString(),
		Category:    category,
		Label:       label,
		CreatedByID: createdByID,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, o)
}

func (u *ParamOptionUseCase) ListByCategory(ctx context.Context, category entities.ParamCategory) ([]entities.ParamOption, error) {
	if !entities.ValidParamCategory(category) {
		return nil, ErrInvalidParamData
	}
	return u.repo.ListByCategory(ctx, category)
}

func (u *ParamOptionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidParamID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrParamOptionNotFound
	}
	return u.repo.Delete(ctx, o.ID)
}
