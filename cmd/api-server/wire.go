//go:build wireinject
// +build wireinject

package main

import (
	"promptbox/config"
	"promptbox/dao"
	"promptbox/dao/cache"
	"promptbox/handler"
	"promptbox/pkg/client"
	"promptbox/pkg/database"
	"promptbox/pkg/server"
	"promptbox/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Prompt), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
