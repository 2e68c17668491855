package app

import (
	"context"
	"log"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"
)

// Container owns every long-lived dependency and wires the usecase graph.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   jwt.Service

	Recorder *usecase.AsyncRecorder

	Users      repository.UserRepository
	Skills     repository.SkillRepository
	UserSkills repository.UserSkillRepository
	Roles      repository.RoleRepository
	History    repository.MatchHistoryRepository

	AuthUC         usecase.AuthUsecase
	RoleUC         usecase.RoleUsecase
	MatchingUC     usecase.MatchingUsecase
	RankingUC      usecase.RankingUsecase
	OrganizationUC usecase.OrganizationUsecase
	UserSkillUC    usecase.UserSkillUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(seedCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	users := repository.NewPostgresUserRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	userSkills := repository.NewPostgresUserSkillRepository(db)
	roles := repository.NewPostgresRoleRepository(db)
	history := repository.NewPostgresMatchHistoryRepository(db)

	recorder := usecase.NewAsyncRecorder(history, logger, cfg.Matching.HistoryBuffer)
	notifier := ws.NewNotifier(hub)

	c := &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: redis,
		Hub:   hub,
		JWT:   jwtSvc,

		Recorder: recorder,

		Users:      users,
		Skills:     skills,
		UserSkills: userSkills,
		Roles:      roles,
		History:    history,

		AuthUC:         usecase.NewAuthUsecase(users, jwtSvc),
		RoleUC:         usecase.NewRoleUsecase(roles),
		MatchingUC:     usecase.NewMatchingUsecase(users, userSkills, roles, recorder, notifier),
		RankingUC:      usecase.NewRankingUsecase(users, userSkills, roles, cfg.Matching),
		OrganizationUC: usecase.NewOrganizationUsecase(users, skills, userSkills, roles, history, redis, logger, cfg.Matching),
		UserSkillUC:    usecase.NewUserSkillUsecase(users, skills, userSkills, redis),
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Recorder != nil {
		c.Recorder.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
