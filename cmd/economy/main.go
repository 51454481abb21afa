package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof" // Register pprof handlers
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sunova/game_economy/internal/config"
	gatewayHttp "github.com/sunova/game_economy/internal/modules/gateway/adapter/http"
	"github.com/sunova/game_economy/internal/modules/gateway/ws"
	instantHttp "github.com/sunova/game_economy/internal/modules/instant/adapter/http"
	instantDomain "github.com/sunova/game_economy/internal/modules/instant/domain"
	instantUseCase "github.com/sunova/game_economy/internal/modules/instant/usecase"
	leaderboardHttp "github.com/sunova/game_economy/internal/modules/leaderboard/adapter/http"
	leaderboardDomain "github.com/sunova/game_economy/internal/modules/leaderboard/domain"
	leaderboardDB "github.com/sunova/game_economy/internal/modules/leaderboard/repository/db"
	leaderboardMemory "github.com/sunova/game_economy/internal/modules/leaderboard/repository/memory"
	leaderboardUseCase "github.com/sunova/game_economy/internal/modules/leaderboard/usecase"
	rocketHttp "github.com/sunova/game_economy/internal/modules/rocket/adapter/http"
	rocketMachine "github.com/sunova/game_economy/internal/modules/rocket/machine"
	rocketUseCase "github.com/sunova/game_economy/internal/modules/rocket/usecase"
	rouletteHttp "github.com/sunova/game_economy/internal/modules/roulette/adapter/http"
	rouletteDomain "github.com/sunova/game_economy/internal/modules/roulette/domain"
	rouletteDB "github.com/sunova/game_economy/internal/modules/roulette/repository/db"
	rouletteMemory "github.com/sunova/game_economy/internal/modules/roulette/repository/memory"
	rouletteUseCase "github.com/sunova/game_economy/internal/modules/roulette/usecase"
	walletHttp "github.com/sunova/game_economy/internal/modules/wallet/adapter/http"
	walletDomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
	walletDB "github.com/sunova/game_economy/internal/modules/wallet/repository/db"
	walletMemory "github.com/sunova/game_economy/internal/modules/wallet/repository/memory"
	walletRedis "github.com/sunova/game_economy/internal/modules/wallet/repository/redis"
	walletUseCase "github.com/sunova/game_economy/internal/modules/wallet/usecase"
	"github.com/sunova/game_economy/pkg/logger"
)

func main() {
	pprofPort := flag.String("pprof-port", "", "Port to run pprof server on (e.g., 6060)")
	flag.Parse()

	cfg := config.LoadEconomyConfig()

	logger.InitWithFile("logs/economy/server.log", cfg.Server.LogLevel, "json")
	defer logger.Flush()

	if *pprofPort != "" {
		go func() {
			addr := "localhost:" + *pprofPort
			logger.InfoGlobal().Str("addr", addr).Msg("Starting pprof server")
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.ErrorGlobal().Err(err).Msg("Failed to start pprof server")
			}
		}()
	}

	logger.InfoGlobal().Str("repo_type", cfg.RepoType).Msg("Starting economy service")

	// 1. Infrastructure
	var (
		ledgerRepo walletDomain.LedgerRepository
		dailyRepo  walletDomain.DailyScoreRepository
		winnerRepo leaderboardDomain.WinnerRepository
		betRepo    rouletteDomain.BetRepository
	)

	if cfg.RepoType == "db" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.NewGormLogger(),
		})
		if err != nil {
			logger.FatalGlobal().Err(err).Msg("Failed to connect to database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			logger.FatalGlobal().Err(err).Msg("Failed to get database instance")
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			logger.FatalGlobal().Err(err).Msg("Failed to ping database")
		}
		logger.InfoGlobal().Msg("Database connected")

		dbLedger := walletDB.NewLedgerRepository(db)
		dbWinner := leaderboardDB.NewWinnerRepository(db)
		dbBet := rouletteDB.NewBetRepository(db)
		for _, m := range []interface{ Migrate() error }{dbLedger, dbWinner, dbBet} {
			if err := m.Migrate(); err != nil {
				logger.FatalGlobal().Err(err).Msg("Failed to migrate database")
			}
		}

		ledgerRepo = dbLedger
		winnerRepo = dbWinner
		betRepo = dbBet

		if cfg.DailyStore == "redis" {
			rdb := redis.NewClient(&redis.Options{
				Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			})
			defer rdb.Close()
			dailyRepo = walletRedis.NewDailyScoreRepository(rdb)
			logger.InfoGlobal().Msg("Daily scores: Redis")
		} else {
			dailyRepo = walletDB.NewDailyScoreRepository(db)
			logger.InfoGlobal().Msg("Daily scores: Database")
		}
	} else {
		ledgerRepo = walletMemory.NewLedgerRepository()
		dailyRepo = walletMemory.NewDailyScoreRepository()
		winnerRepo = leaderboardMemory.NewWinnerRepository()
		betRepo = rouletteMemory.NewBetRepository()
		logger.InfoGlobal().Msg("Repositories: Memory")
	}

	// 2. Modules
	walletUC := walletUseCase.NewWalletUseCase(ledgerRepo, dailyRepo, cfg.Wallet.OwnerID, cfg.Wallet.MinGiftAmount)
	walletHandler := walletHttp.NewHandler(walletUC)
	logger.InfoGlobal().Msg("Wallet module initialized")

	leaderboardUC := leaderboardUseCase.NewLeaderboardUseCase(winnerRepo)
	leaderboardHandler := leaderboardHttp.NewHandler(leaderboardUC, walletUC)
	logger.InfoGlobal().Msg("Leaderboard module initialized")

	rouletteUC := rouletteUseCase.NewRouletteUseCase(betRepo, walletUC, leaderboardUC, cfg.Wallet.MinBet)
	rouletteHandler := rouletteHttp.NewHandler(rouletteUC)
	logger.InfoGlobal().Msg("Roulette module initialized")

	instantGames := make([]instantDomain.Game, 0, len(cfg.Games))
	for _, g := range cfg.Games {
		instantGames = append(instantGames, instantDomain.Game{
			Code:      g.Code,
			Route:     g.Route,
			Label:     g.Label,
			WinChance: g.WinChance,
			MinMult:   g.MinMult,
			MaxMult:   g.MaxMult,
		})
	}
	instantUC := instantUseCase.NewInstantUseCase(instantGames, walletUC, leaderboardUC, cfg.Wallet.MinBet, nil)
	instantHandler := instantHttp.NewHandler(instantUC)
	logger.InfoGlobal().Int("games", len(instantGames)).Msg("Instant games module initialized")

	wsManager := ws.NewManager()
	go wsManager.Run()

	machine := rocketMachine.NewStateMachine()
	machine.RegisterEventHandler(gatewayHttp.BroadcastRocketEvents(wsManager))
	rocketUC := rocketUseCase.NewRocketUseCase(machine, walletUC, leaderboardUC, cfg.Wallet.MinBet)
	rocketHandler := rocketHttp.NewHandler(rocketUC)
	logger.InfoGlobal().Msg("Rocket module initialized")

	gatewayHandler := gatewayHttp.NewHandler(wsManager)

	// 3. HTTP server
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware())

	api := router.Group("/api")
	{
		walletHandler.RegisterRoutes(api, api)
		leaderboardHandler.RegisterRoutes(api)
		rouletteHandler.RegisterRoutes(api)
		instantHandler.RegisterRoutes(api)
		rocketHandler.RegisterRoutes(api)
	}
	gatewayHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.Server.Name})
	})
	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   cfg.Server.Name,
			"repo_type": cfg.RepoType,
		})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": cfg.Server.Name, "status": "running"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.InfoGlobal().
			Str("port", cfg.Server.HTTPPort).
			Str("ws_url", fmt.Sprintf("ws://localhost:%s/ws?userId=YOUR_ID", cfg.Server.HTTPPort)).
			Msg("Economy service running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalGlobal().Err(err).Msg("HTTP server failed")
		}
	}()

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.InfoGlobal().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorGlobal().Err(err).Msg("Server forced to shutdown")
	}

	wsManager.Shutdown()
	logger.InfoGlobal().Msg("Server exited properly")
}
