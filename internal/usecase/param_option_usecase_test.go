package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
	mock_interfaces "github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParamOptionUseCase_Create(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		uc := NewParamOptionUseCase(nil)
		_, err := uc.Create(context.Background(), "cor_favorita", "azul", "u-1")
		if !errors.Is(err, ErrInvalidParamData) {
			t.Fatalf("expected ErrInvalidParamData, got %v", err)
		}
	})

	t.Run("duplicate label in category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParamOptionRepository(ctrl)
		uc := NewParamOptionUseCase(repo)

		repo.EXPECT().ListByCategory(gomock.Any(), entities.ParamFrete).Return(
			[]entities.ParamOption{{ID: "o-1", Category: entities.ParamFrete, Label: "CIF"}}, nil)

		_, err := uc.Create(context.Background(), entities.ParamFrete, "cif", "u-1")
		if !errors.Is(err, ErrParamOptionExists) {
			t.Fatalf("expected ErrParamOptionExists, got %v", err)
		}
	})

	t.Run("creates with author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParamOptionRepository(ctrl)
		uc := NewParamOptionUseCase(repo)

		repo.EXPECT().ListByCategory(gomock.Any(), entities.ParamValidade).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ParamOption) (entities.ParamOption, error) {
				if o.ID == "" || o.Label != "15 dias" || o.CreatedByID != "u-1" {
					t.Fatalf("unexpected option: %+v", o)
				}
				return o, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.ParamValidade, " 15 dias ", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParamOptionUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParamOptionRepository(ctrl)
		uc := NewParamOptionUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.ParamOption{}, nil)

		err := uc.Delete(context.Background(), "o-9")
		if !errors.Is(err, ErrParamOptionNotFound) {
			t.Fatalf("expected ErrParamOptionNotFound, got %v", err)
		}
	})

	t.Run("deletes existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIParamOptionRepository(ctrl)
		uc := NewParamOptionUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ParamOption{ID: "o-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)

		if err := uc.Delete(context.Background(), "o-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCNPJUseCase_Lookup(t *testing.T) {
	t.Run("strips formatting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockICNPJGateway(ctrl)
		uc := NewCNPJUseCase(gw)

		gw.EXPECT().Lookup(gomock.Any(), "12345678000190").Return(
			interfaces.CompanyInfo{RazaoSocial: "ACME LTDA", CNPJ: "12345678000190"}, nil)

		info, err := uc.Lookup(context.Background(), "12.345.678/0001-90")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.RazaoSocial != "ACME LTDA" {
			t.Fatalf("unexpected info: %+v", info)
		}
	})

	t.Run("rejects short input", func(t *testing.T) {
		uc := NewCNPJUseCase(nil)
		_, err := uc.Lookup(context.Background(), "123")
		if !errors.Is(err, ErrInvalidCNPJ) {
			t.Fatalf("expected ErrInvalidCNPJ, got %v", err)
		}
	})
}
