package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository  *ProfileRepository
	OrphanRepository   *OrphanRepository
	AuthUserRepository *AuthUserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository:  NewProfileRepository(db),
		OrphanRepository:   NewOrphanRepository(db),
		AuthUserRepository: NewAuthUserRepository(db),
	}
}
