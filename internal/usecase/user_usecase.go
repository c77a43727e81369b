package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vktkrum1/sistema-de-propostas/internal/domain/entities"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase/interfaces"
)

var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidUserID      = errors.New("id de usuário inválido")
	ErrInvalidUserData    = errors.New("dados de usuário inválidos")
	ErrUsuarioTaken       = errors.New("nome de usuário já cadastrado")
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
)

// CreateUserInput registers a new account. Senha arrives in clear text and
// is hashed before it ever reaches the repository.
type CreateUserInput struct {
	Usuario      string
	NomeCompleto string
	Senha        string
	Tipo         entities.UserRole
	Email        string
	ProxNum      int
}

// UpdateUserInput changes an account. Blank Senha keeps the current hash;
// ProxNum <= 0 keeps the current sequence position.
type UpdateUserInput struct {
	NomeCompleto string
	Senha        string
	Tipo         entities.UserRole
	Email        string
	ProxNum      int
}

// IUserUseCase exposes account management and login verification.

type IUserUseCase interface {
	Create(ctx context.Context, in CreateUserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (entities.User, error)
	Delete(ctx context.Context, id string) error
	Authenticate(ctx context.Context, usuario, senha string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, in CreateUserInput) (entities.User, error) {
	in.Usuario = strings.TrimSpace(in.Usuario)
	in.NomeCompleto = strings.TrimSpace(in.NomeCompleto)
	if in.Usuario == "" || in.NomeCompleto == "" || in.Senha == "" {
		return entities.User{}, ErrInvalidUserData
	}
	if !validRole(in.Tipo) {
		return entities.User{}, ErrInvalidUserData
	}

	// Login names are unique.
	if existing, err := u.repo.GetByUsuario(ctx, in.Usuario); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUsuarioTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	prox := in.ProxNum
	if prox < 1 {
		prox = 1
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Usuario:      in.Usuario,
		NomeCompleto: in.NomeCompleto,
		SenhaHash:    string(hash),
		Tipo:         in.Tipo,
		Email:        strings.TrimSpace(in.Email),
		ProxNum:      prox,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Update(ctx context.Context, id string, in UpdateUserInput) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	if nome := strings.TrimSpace(in.NomeCompleto); nome != "" {
		user.NomeCompleto = nome
	}
	if in.Tipo != "" {
		if !validRole(in.Tipo) {
			return entities.User{}, ErrInvalidUserData
		}
		user.Tipo = in.Tipo
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		user.Email = email
	}
	if in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		user.SenhaHash = string(hash)
	}
	if in.ProxNum > 0 {
		user.ProxNum = in.ProxNum
	}

	user.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, user)
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, user.ID)
}

// Authenticate verifies login credentials. It never reveals whether the
// login or the password was wrong.
func (u *UserUseCase) Authenticate(ctx context.Context, usuario, senha string) (entities.User, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" || senha == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	user, err := u.repo.GetByUsuario(ctx, usuario)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func validRole(r entities.UserRole) bool {
	switch r {
	case entities.RoleAdmin, entities.RoleGestor, entities.RoleUsuario:
		return true
	}
	return false
}
