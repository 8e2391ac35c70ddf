//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/mssola/mihi/internal/adapter/repository"
	"github.com/mssola/mihi/internal/infrastructure/config"
	"github.com/mssola/mihi/internal/infrastructure/database"
	"github.com/mssola/mihi/internal/infrastructure/server"
	"github.com/mssola/mihi/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
	provideCaseOrder,
)

var databaseSet = wire.NewSet(
	database.Open,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var repositorySet = wire.NewSet(
	repository.NewWordRepository,
	repository.NewTagRepository,
	provideFormRepository,
	provideCatalog,
)

var usecaseSet = wire.NewSet(
	usecase.NewWordUsecase,
	usecase.NewTagUsecase,
	usecase.NewInflectionUsecase,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize(configFile string) (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
