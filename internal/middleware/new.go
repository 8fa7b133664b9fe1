package middleware

import (
	"retain-api/pkg/log"
	"retain-api/pkg/scope"
)

type Middleware struct {
	l               log.Logger
	jwtManager      scope.Manager
	internalKeyHash string
}

func New(l log.Logger, jwtManager scope.Manager, internalKeyHash string) Middleware {
	return Middleware{
		l:               l,
		jwtManager:      jwtManager,
		internalKeyHash: internalKeyHash,
	}
}
