package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	mock_interfaces "github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestEquipmentUseCase_Create(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		uc := NewEquipmentUseCase(nil, t.TempDir())
		_, err := uc.Create(context.Background(), CreateEquipmentInput{UnitPrice: 10})
		if !errors.Is(err, ErrInvalidEquipmentData) {
			t.Fatalf("expected ErrInvalidEquipmentData, got %v", err)
		}
	})

	t.Run("defaults quantity to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo, t.TempDir())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
				if e.ID == "" || e.Quantity != 1 || e.UnitPrice != 1500 {
					t.Fatalf("unexpected equipment: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.Create(context.Background(), CreateEquipmentInput{Name: "REP", UnitPrice: 1500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEquipmentUseCase_AttachImage(t *testing.T) {
	t.Run("rejects unsupported extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo, t.TempDir())

		repo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", Name: "REP"}, nil)

		_, err := uc.AttachImage(context.Background(), "eq-1", "foto.bmp", []byte("x"))
		if !errors.Is(err, ErrUnsupportedImageExt) {
			t.Fatalf("expected ErrUnsupportedImageExt, got %v", err)
		}
	})

	t.Run("rejects corrupt payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewEquipmentUseCase(repo, t.TempDir())

		repo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", Name: "REP"}, nil)

		_, err := uc.AttachImage(context.Background(), "eq-1", "foto.png", []byte("not a png"))
		if !errors.Is(err, ErrInvalidImage) {
			t.Fatalf("expected ErrInvalidImage, got %v", err)
		}
	})

	t.Run("stores letterboxed thumbnail and relative path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		baseDir := t.TempDir()
		uc := NewEquipmentUseCase(repo, baseDir)

		repo.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.Equipment{ID: "eq-1", Name: "Relógio REP"}, nil)
		var saved entities.Equipment
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
				saved = e
				return e, nil
			},
		)

		_, err := uc.AttachImage(context.Background(), "eq-1", "foto.png", pngBytes(t, 640, 480))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(saved.IllustrationPath, "static/images/") || !strings.HasSuffix(saved.IllustrationPath, ".png") {
			t.Fatalf("unexpected stored path %q", saved.IllustrationPath)
		}

		abs := filepath.Join(baseDir, filepath.FromSlash(saved.IllustrationPath))
		data, err := os.ReadFile(abs)
		if err != nil {
			t.Fatalf("thumbnail not written: %v", err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("thumbnail is not a png: %v", err)
		}
		if cfg.Width != 160 || cfg.Height != 180 {
			t.Fatalf("expected 160x180 canvas, got %dx%d", cfg.Width, cfg.Height)
		}
	})
}

func TestLetterboxPNG(t *testing.T) {
	t.Run("small image is centered without upscaling", func(t *testing.T) {
		out, err := letterboxPNG(pngBytes(t, 40, 40))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != 160 || b.Dy() != 180 {
			t.Fatalf("expected 160x180, got %dx%d", b.Dx(), b.Dy())
		}

		// Center carries the source color, corner stays transparent padding.
		_, _, _, ca := img.At(80, 90).RGBA()
		if ca == 0 {
			t.Fatalf("expected opaque center")
		}
		_, _, _, pa := img.At(0, 0).RGBA()
		if pa != 0 {
			t.Fatalf("expected transparent corner")
		}
	})
}

func TestImageHint(t *testing.T) {
	if got := imageHint("Relógio de Ponto X-500"); got != "relgio_de_ponto_x_500" {
		t.Fatalf("unexpected hint %q", got)
	}
	if got := imageHint("!!!"); got != "eq" {
		t.Fatalf("expected fallback hint, got %q", got)
	}
}
