package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

var (
	ErrEquipmentNotFound    = errors.New("equipamento não encontrado")
	ErrInvalidEquipmentID   = errors.New("id de equipamento inválido")
	ErrInvalidEquipmentData = errors.New("dados de equipamento inválidos")
	ErrUnsupportedImageExt  = errors.New("formato de imagem não aceito: use PNG, JPG, JPEG ou WEBP")
)

// CreateEquipmentInput registers a catalog item with its default values.
type CreateEquipmentInput struct {
	Name        string
	Description string
	UnitPrice   float64
	Quantity    int
}

// UpdateEquipmentInput changes a catalog item. Zero UnitPrice/Quantity keep
// the current values.
type UpdateEquipmentInput struct {
	Name        string
	Description string
	UnitPrice   float64
	Quantity    int
}

// IEquipmentUseCase exposes catalog management.

type IEquipmentUseCase interface {
	Create(ctx context.Context, in CreateEquipmentInput) (entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	List(ctx context.Context) ([]entities.Equipment, error)
	Update(ctx context.Context, id string, in UpdateEquipmentInput) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
	AttachImage(ctx context.Context, id, filename string, data []byte) (entities.Equipment, error)
}

// EquipmentUseCase persists catalog entries and normalizes uploaded
// illustrations under <baseDir>/static/images.
type EquipmentUseCase struct {
	repo    interfaces.IEquipmentRepository
	baseDir string
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(repo interfaces.IEquipmentRepository, baseDir string) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, baseDir: baseDir}
}

func (u *EquipmentUseCase) Create(ctx context.Context, in CreateEquipmentInput) (entities.Equipment, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.UnitPrice < 0 {
		return entities.Equipment{}, ErrInvalidEquipmentData
	}
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	now := time.Now().UTC()
	e := entities.Equipment{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		UnitPrice:   in.UnitPrice,
		Quantity:    qty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EquipmentUseCase) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if e.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (u *EquipmentUseCase) List(ctx context.Context) ([]entities.Equipment, error) {
	return u.repo.List(ctx)
}

func (u *EquipmentUseCase) Update(ctx context.Context, id string, in UpdateEquipmentInput) (entities.Equipment, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		e.Name = name
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		e.Description = desc
	}
	if in.UnitPrice > 0 {
		e.UnitPrice = in.UnitPrice
	}
	if in.Quantity > 0 {
		e.Quantity = in.Quantity
	}

	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, e.ID)
}

// AttachImage letterboxes the upload to the 160x180 PNG thumbnail, stores it
// under static/images and records the relative path on the equipment.
func (u *EquipmentUseCase) AttachImage(ctx context.Context, id, filename string, data []byte) (entities.Equipment, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if !allowedImageExt(filename) {
		return entities.Equipment{}, ErrUnsupportedImageExt
	}

	thumb, err := letterboxPNG(data)
	if err != nil {
		return entities.Equipment{}, err
	}

	name := fmt.Sprintf("%s_%s.png", imageHint(e.Name), strings.ReplaceAll(uuid.NewString(), "-", ""))
	dir := filepath.Join(u.baseDir, "static", "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return entities.Equipment{}, fmt.Errorf("criar diretório de imagens: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), thumb, 0o644); err != nil {
		return entities.Equipment{}, fmt.Errorf("gravar imagem: %w", err)
	}

	e.IllustrationPath = filepath.ToSlash(filepath.Join("static", "images", name))
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

// imageHint turns the equipment name into a safe filename prefix.
func imageHint(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "eq"
	}
	hint := b.String()
	if len(hint) > 24 {
		hint = hint[:24]
	}
	return hint
}
