package entities

import "time"

// UserRole gates access to management screens and to other users' proposals.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleGestor  UserRole = "gestor"
	RoleUsuario UserRole = "usuario"
)

// Manages reports whether the role can see and manage every proposal.
func (r UserRole) Manages() bool {
	return r == RoleAdmin || r == RoleGestor
}

// User is an application account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - usuario (login name) is unique by convention, enforced at creation.
//
// ProxNum is the per-user proposal sequence; it only moves forward, through
// an atomic counter update at proposal creation.
type User struct {
	ID           string    `json:"id"`
	Usuario      string    `json:"usuario"`
	NomeCompleto string    `json:"nome_completo"`
	SenhaHash    string    `json:"-"`
	Tipo         UserRole  `json:"tipo"`
	Email        string    `json:"email"`
	ProxNum      int       `json:"prox_num"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
