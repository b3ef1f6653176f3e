package app

import (
	"context"

	accountAPI "lucky_slots/internal/api/account"
	authAPI "lucky_slots/internal/api/auth"
	gameAPI "lucky_slots/internal/api/game"
	healthAPI "lucky_slots/internal/api/health"
	"lucky_slots/internal/config"
	"lucky_slots/internal/config/env"
	"lucky_slots/internal/lock"
	"lucky_slots/internal/logger"
	"lucky_slots/internal/middleware"
	"lucky_slots/internal/repository"
	"lucky_slots/internal/repository/auth_repo"
	"lucky_slots/internal/repository/spin_repo"
	"lucky_slots/internal/repository/stats_repo"
	"lucky_slots/internal/repository/transaction_repo"
	"lucky_slots/internal/repository/user_repo"
	"lucky_slots/internal/service"
	"lucky_slots/internal/service/auth"
	"lucky_slots/internal/service/game"
	"lucky_slots/internal/wager"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	logger *zap.Logger

	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisCfg    config.RedisConfig
	redisClient *redis.Client
	locker      lock.Locker

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler
	authMw   *middleware.Auth

	// User bits
	userRepo repository.UserRepository

	// Game bits
	gameCfg     config.GameConfig
	spinRepo    repository.SpinRepository
	txRepo      repository.TransactionRepository
	statsRepo   repository.StatsRepository
	gameDeps    *game.Deps
	gameServ    service.GameService
	gameHand    *gameAPI.Handler
	accountServ service.AccountService
	accountHand *accountAPI.Handler

	// Jobs
	cronCfg config.CronConfig

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// DBClient создаёт пул соединений и накатывает миграции
func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = repository.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

// RedisClient возвращает nil, если Redis не настроен
func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil && sp.RedisCfg().Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     sp.RedisCfg().Address(),
			Password: sp.RedisCfg().Password(),
			DB:       sp.RedisCfg().DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to connect to redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

// Locker - блокировка спинов в Redis, если он настроен, иначе в памяти процесса
func (sp *ServiceProvider) Locker(ctx context.Context) lock.Locker {
	if sp.locker == nil {
		if client := sp.RedisClient(ctx); client != nil {
			sp.locker = lock.NewRedis(client, sp.RedisCfg().LockTTL(), sp.Logger())
		} else {
			sp.Logger().Warn("REDIS_ADDR is empty, spin lock is process-local")
			sp.locker = lock.NewLocal()
		}
	}
	return sp.locker
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.GameCfg().WelcomeBonus(),
			sp.Logger().Named("auth"),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:       sp.AuthService(ctx),
			RefreshTTL: sp.JWTCfg().RefreshTokenDuration(),
			Logger:     sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) AuthMiddleware() *middleware.Auth {
	if sp.authMw == nil {
		sp.authMw = middleware.NewAuth(sp.JWTCfg().AccessTokenSecretKey(), sp.Logger())
	}
	return sp.authMw
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) SpinRepository(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx))
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) TransactionRepository(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx))
	}
	return sp.txRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GameDeps(ctx context.Context) game.Deps {
	if sp.gameDeps == nil {
		sp.gameDeps = &game.Deps{
			TxManager: sp.TXManager(ctx),
			UserRepo:  sp.UserRepo(ctx),
			SpinRepo:  sp.SpinRepository(ctx),
			TxRepo:    sp.TransactionRepository(ctx),
			StatsRepo: sp.StatsRepository(),
			Locker:    sp.Locker(ctx),
			Source:    wager.NewRandSource(),
			GameCfg:   sp.GameCfg(),
			Logger:    sp.Logger().Named("game"),
		}
	}
	return *sp.gameDeps
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.GameDeps(ctx))
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = game.NewAccountService(sp.GameDeps(ctx))
	}
	return sp.accountServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{
			Serv:   sp.AccountService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) CronCfg() config.CronConfig {
	if sp.cronCfg == nil {
		cfg, err := env.NewCronConfig()
		if err != nil {
			panic("failed to get cron config: " + err.Error())
		}
		sp.cronCfg = cfg
	}
	return sp.cronCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger(sp.Logger().Named("http")))
		r.Use(chimw.Compress(5, "application/json"))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", healthAPI.NewHandler(sp.DBClient(ctx)).Healthz)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		r.Group(func(rr chi.Router) {
			rr.Use(sp.AuthMiddleware().Middleware)

			// Game endpoints
			gameHandler := sp.GameHandler(ctx)
			rr.Route("/game", func(rg chi.Router) {
				rg.Get("/rules", gameHandler.Rules)
				rg.Post("/spin", gameHandler.Spin)
				rg.Get("/history", gameHandler.History)
				rg.Get("/stats", gameHandler.Stats)
			})

			// Account endpoints
			accountHandler := sp.AccountHandler(ctx)
			rr.Route("/account", func(ra chi.Router) {
				ra.Get("/", accountHandler.Get)
				ra.Post("/top-up", accountHandler.TopUp)
				ra.Post("/withdraw", accountHandler.Withdraw)
				ra.Get("/transactions", accountHandler.Transactions)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения с базой и Redis
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			sp.Logger().Warn("close redis", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
