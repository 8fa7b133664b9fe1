package usecase

import (
	"retain-api/internal/alert"
	"retain-api/pkg/discord"
	"retain-api/pkg/log"
)

type implUseCase struct {
	logger  log.Logger
	discord discord.IDiscord
}

func New(logger log.Logger, discord discord.IDiscord) alert.UseCase {
	return &implUseCase{
		logger:  logger,
		discord: discord,
	}
}
