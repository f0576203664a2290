package composite

import (
	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/capitalizeai/scoring-api/internal/config"
	"github.com/capitalizeai/scoring-api/internal/repository"
	osrepo "github.com/capitalizeai/scoring-api/internal/repository/opensearch"
	"github.com/capitalizeai/scoring-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	searchRepo repository.SearchRepository
}

// NewCompositeRepository combines the Postgres repositories with the
// OpenSearch search repository behind the single Repository interface.
func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearch.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		searchRepo:         osrepo.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
