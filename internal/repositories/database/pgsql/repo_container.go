package pgsql

import (
	portsrepo "github.com/SscSPs/client_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo: NewClientRepository(dbPool),
	}
}
