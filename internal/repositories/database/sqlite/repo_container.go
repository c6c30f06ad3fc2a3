package sqlite

import (
	portsrepo "github.com/SscSPs/client_service/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo: NewClientRepository(db),
	}
}
