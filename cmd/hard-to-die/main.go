package main

import (
	"os"

	"github.com/Drakonfox/Hard-to-Die/internal/api"
	"github.com/Drakonfox/Hard-to-Die/internal/config"
	"github.com/Drakonfox/Hard-to-Die/internal/constants"
	"github.com/Drakonfox/Hard-to-Die/internal/logging"
	"github.com/Drakonfox/Hard-to-Die/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Configuration file is optional: the built-in catalog covers local
	// play. Path may be provided via HTD_CONFIG.
	cfg := config.Default()
	if configPath := os.Getenv(constants.EnvConfigPath); configPath != "" {
		cfg = loadConfigOrExit(configPath)
	}

	// Allow the DB path to be configured via HTD_DB_PATH or the config file.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)
	manager := service.NewManager(cfg.Catalog, repo)
	handler := api.NewRunHandler(manager, repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteCatalog, handler.Catalog)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)

		apiRoutes.POST(constants.RouteRuns, handler.CreateRun)
		apiRoutes.GET(constants.RouteRunByID, handler.GetRun)
		apiRoutes.GET(constants.RouteRunStream, handler.StreamRun)

		apiRoutes.POST(constants.RouteRunLevelStart, handler.StartLevel)
		apiRoutes.POST(constants.RouteRunAction, handler.UseAction)
		apiRoutes.POST(constants.RouteRunConsumable, handler.UseConsumable)

		apiRoutes.POST(constants.RouteRunShopEnter, handler.EnterShop)
		apiRoutes.POST(constants.RouteRunShopBuy, handler.ShopBuy)
		apiRoutes.POST(constants.RouteRunShopSwap, handler.ShopReplace)
		apiRoutes.POST(constants.RouteRunShopCancel, handler.ShopCancel)
		apiRoutes.POST(constants.RouteRunRestart, handler.Restart)
	}

	addr := os.Getenv(constants.EnvAddr)
	if addr == "" {
		addr = cfg.ServerAddress
	}
	if addr == "" {
		addr = constants.DefaultAddr
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
