package controller

import (
	"github.com/jrandrade/datastore-gateway/config"
	"github.com/jrandrade/datastore-gateway/infra"
	"github.com/jrandrade/datastore-gateway/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
	}
}
