package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/events"
	"resume-insights/internal/identity"
	"resume-insights/internal/insights"
	"resume-insights/internal/jobroles"
	"resume-insights/internal/llm"
	"resume-insights/internal/llm/gemini"
	"resume-insights/internal/llm/openai"
	"resume-insights/internal/matching"
	"resume-insights/internal/questions"
	"resume-insights/internal/resumes"
	"resume-insights/internal/services/health"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/server"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/storage/db"
	"resume-insights/internal/shared/storage/object"
	localstore "resume-insights/internal/shared/storage/object/local"
	s3store "resume-insights/internal/shared/storage/object/s3"
	"resume-insights/internal/shared/telemetry"
	"resume-insights/internal/skills"
	"resume-insights/internal/users"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config    config.Config
	Router    *gin.Engine
	DB        *sql.DB
	Store     object.ObjectStore
	LLM       llm.Client
	Verifier  identity.Verifier
	Publisher events.Publisher

	UsersService     *users.Service
	ResumesService   *resumes.Service
	MatchingService  *matching.Service
	QuestionsService *questions.Service
	InsightsService  *insights.Service
	JobRolesRepo     jobroles.Repo
}

// Options lets callers replace collaborators that talk to the outside world.
type Options struct {
	Verifier identity.Verifier
	LLM      llm.Client
}

// Build wires every dependency and the router from cfg.
func Build(cfg config.Config) (*App, error) {
	return BuildWith(cfg, Options{})
}

// BuildWith is Build with explicit overrides.
func BuildWith(cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient := opts.LLM
	if llmClient == nil {
		if llmClient, err = NewLLMClient(ctx, cfg); err != nil {
			return nil, err
		}
	}

	verifier := opts.Verifier
	if verifier == nil {
		if verifier, err = buildVerifier(cfg); err != nil {
			return nil, err
		}
	}

	publisher, err := buildPublisher(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		DB:        sqlDB,
		Store:     store,
		LLM:       llmClient,
		Verifier:  verifier,
		Publisher: publisher,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Close releases the database pool and broker connection.
func (a *App) Close() error {
	var errs []error
	if closer, ok := a.Publisher.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	errs = append(errs, db.Close(a.DB))
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.database_url_empty", map[string]any{"repositories": "memory"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.database_connect_failed", map[string]any{"repositories": "memory", "error": err})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// NewLLMClient returns nil when no provider is configured so the pipeline
// goes straight to its keyword and template fallbacks.
func NewLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	var (
		client llm.Client
		err    error
	)
	switch cfg.LLMProvider {
	case "openai":
		client, err = openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, openai.WithTimeout(cfg.LLMTimeout))
	case "gemini":
		client, err = gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s client: %w", cfg.LLMProvider, err)
	}
	return client, nil
}

func buildVerifier(cfg config.Config) (identity.Verifier, error) {
	switch cfg.AuthProvider {
	case "firebase":
		return identity.NewFirebaseVerifier(cfg.FirebaseProjectID)
	case "google":
		return identity.NewGoogleVerifier(), nil
	default:
		return identity.NewHMACVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	}
}

func buildPublisher(cfg config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		return events.NopPublisher{}, nil
	}
	pub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.amqp_unavailable", map[string]any{"error": err})
			return events.NopPublisher{}, nil
		}
		return nil, err
	}
	return pub, nil
}

func buildSkillCache(cfg config.Config) (skills.Cache, error) {
	if cfg.RedisURL == "" {
		return skills.NewMemoryCache(cfg.SkillCacheTTL), nil
	}
	cache, err := skills.NewRedisCache(cfg.RedisURL, cfg.SkillCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache, nil
}

func loadCatalog(cfg config.Config) ([]jobroles.JobRole, error) {
	if cfg.JobRolesFile != "" {
		return jobroles.LoadCatalog(cfg.JobRolesFile)
	}
	return jobroles.DefaultCatalog()
}

func buildServices(ctx context.Context, app *App) error {
	catalog, err := loadCatalog(app.Config)
	if err != nil {
		return fmt.Errorf("load job roles: %w", err)
	}

	var (
		userRepo     users.Repo
		resumeRepo   resumes.Repo
		matchRepo    matching.Repo
		questionRepo questions.Repo
		roleRepo     jobroles.Repo
	)
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		matchRepo = &matching.PGRepo{DB: app.DB}
		questionRepo = &questions.PGRepo{DB: app.DB}
		roleRepo = &jobroles.PGRepo{DB: app.DB}
		if err := roleRepo.Upsert(ctx, catalog); err != nil {
			return fmt.Errorf("seed job roles: %w", err)
		}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		matchRepo = matching.NewMemoryRepo()
		questionRepo = questions.NewMemoryRepo()
		roleRepo = jobroles.NewMemoryRepo(catalog)
	}

	var (
		primary   skills.Classifier
		generator questions.Generator
		cache     skills.Cache
	)
	if app.LLM != nil {
		primary = skills.ModelClassifier{Client: app.LLM}
		generator = questions.ModelGenerator{Client: app.LLM}
		if cache, err = buildSkillCache(app.Config); err != nil {
			return err
		}
	}

	userSvc := users.NewService(userRepo)
	matchSvc := matching.NewService(matchRepo, roleRepo)
	questionSvc := questions.NewService(questionRepo, generator, app.Config.LLMTimeout)
	resumeSvc := &resumes.Service{
		Repo:       resumeRepo,
		Store:      app.Store,
		Classifier: skills.NewFallbackClassifier(primary, app.Config.LLMTimeout, cache),
		Matcher:    matchSvc,
		Questions:  questionSvc,
		Events:     app.Publisher,
	}
	insightSvc := &insights.Service{Resumes: resumeSvc, Questions: questionSvc, Matches: matchSvc}

	app.UsersService = userSvc
	app.ResumesService = resumeSvc
	app.MatchingService = matchSvc
	app.QuestionsService = questionSvc
	app.InsightsService = insightSvc
	app.JobRolesRepo = roleRepo

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Health:          health.NewService(app.DB),
		Verifier:        app.Verifier,
		ResolveUser:     userSvc.ResolveID,
		RateLimiter:     middleware.NewRateLimiter(nil),
		UserHandler:     users.NewHandler(userSvc),
		ResumeHandler:   resumes.NewHandler(resumeSvc),
		MatchHandler:    matching.NewHandler(matchSvc),
		QuestionHandler: questions.NewHandler(questionSvc, resumeSvc),
		JobRoleHandler:  jobroles.NewHandler(roleRepo),
		InsightsHandler: insights.NewHandler(insightSvc),
	})
	return nil
}
