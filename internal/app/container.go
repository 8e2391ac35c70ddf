package app

import (
	"entgo.io/ent/dialect"
	"github.com/sirupsen/logrus"

	"github.com/mssola/mihi/internal/infrastructure/config"
	"github.com/mssola/mihi/internal/infrastructure/server"
	"github.com/mssola/mihi/internal/repository"
	"github.com/mssola/mihi/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Driver      dialect.Driver
	Forms       repository.FormRepository
	Words       usecase.WordUsecase
	Tags        usecase.TagUsecase
	Inflections usecase.InflectionUsecase
	Server      *server.Server
}
