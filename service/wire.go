package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(VerifyService), "*"),
	wire.Bind(new(IVerifyService), new(*VerifyService)),

	wire.Struct(new(PromptService), "*"),
	wire.Bind(new(IPromptService), new(*PromptService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	NewEmailService,
)
