package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	mock_interfaces "github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), CreateUserInput{Usuario: "a"})
		if !errors.Is(err, ErrInvalidUserData) {
			t.Fatalf("expected ErrInvalidUserData, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), CreateUserInput{
			Usuario: "a", NomeCompleto: "A B", Senha: "x", Tipo: "root",
		})
		if !errors.Is(err, ErrInvalidUserData) {
			t.Fatalf("expected ErrInvalidUserData, got %v", err)
		}
	})

	t.Run("duplicate login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByUsuario(gomock.Any(), "jsilva").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), CreateUserInput{
			Usuario: "jsilva", NomeCompleto: "João Silva", Senha: "segredo", Tipo: entities.RoleUsuario,
		})
		if !errors.Is(err, ErrUsuarioTaken) {
			t.Fatalf("expected ErrUsuarioTaken, got %v", err)
		}
	})

	t.Run("hashes password and defaults sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByUsuario(gomock.Any(), "jsilva").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.ProxNum != 1 {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.SenhaHash == "" || u.SenhaHash == "segredo" {
					t.Fatalf("password was not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("segredo")); err != nil {
					t.Fatalf("hash does not verify: %v", err)
				}
				return u, nil
			},
		)

		_, err := uc.Create(context.Background(), CreateUserInput{
			Usuario: "jsilva", NomeCompleto: "João Silva", Senha: "segredo", Tipo: entities.RoleUsuario,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := entities.User{ID: "u-1", Usuario: "jsilva", SenhaHash: string(hash), Tipo: entities.RoleAdmin}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByUsuario(gomock.Any(), "jsilva").Return(stored, nil)

		u, err := uc.Authenticate(context.Background(), "jsilva", "segredo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByUsuario(gomock.Any(), "jsilva").Return(stored, nil)

		_, err := uc.Authenticate(context.Background(), "jsilva", "errada")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByUsuario(gomock.Any(), "ninguem").Return(entities.User{}, nil)

		_, err := uc.Authenticate(context.Background(), "ninguem", "x")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("blank password keeps hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(
			entities.User{ID: "u-1", SenhaHash: "hash-antigo", ProxNum: 3}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.SenhaHash != "hash-antigo" {
					t.Fatalf("hash should not change")
				}
				if u.ProxNum != 3 {
					t.Fatalf("sequence should not change, got %d", u.ProxNum)
				}
				if u.NomeCompleto != "Novo Nome" {
					t.Fatalf("expected name update, got %q", u.NomeCompleto)
				}
				return u, nil
			},
		)

		_, err := uc.Update(context.Background(), "u-1", UpdateUserInput{NomeCompleto: "Novo Nome"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-9").Return(entities.User{}, nil)

		_, err := uc.Update(context.Background(), "u-9", UpdateUserInput{})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
