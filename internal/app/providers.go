package app

import (
	"entgo.io/ent/dialect"

	"github.com/mssola/mihi/internal/adapter/repository"
	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/infrastructure/config"
	"github.com/mssola/mihi/internal/inflection"
	domain "github.com/mssola/mihi/internal/repository"
)

func provideCaseOrder(cfg *config.Config) (entity.CaseOrder, error) {
	return entity.ParseCaseOrder(cfg.Inflection.CaseOrder)
}

// provideFormRepository returns the forms catalog of the database, cached
// in memory as configured.
func provideFormRepository(drv dialect.Driver, cfg *config.Config) domain.FormRepository {
	return repository.NewCachedFormRepository(repository.NewFormRepository(drv), cfg.Cache.TTL, cfg.Cache.Cleanup)
}

func provideCatalog(forms domain.FormRepository) inflection.Catalog {
	return forms
}
