package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerpath_backend/internal/catalog"
	"careerpath_backend/internal/config"
	"careerpath_backend/internal/controller"
	"careerpath_backend/internal/engine"
	"careerpath_backend/internal/repository"
	"careerpath_backend/internal/service"
	"careerpath_backend/pkg/database"
	"careerpath_backend/pkg/logger"
	"careerpath_backend/pkg/monitoring"
	"careerpath_backend/pkg/security"
	"careerpath_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	session  *repository.SessionRepository
	result   *repository.QuizResultRepository
	skillGap *repository.SkillGapRepository
	roadmap  *repository.RoadmapRepository
	resume   *repository.ResumeRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	quiz      *service.QuizService
	career    *service.CareerService
	skill     *service.SkillService
	roadmap   *service.RoadmapService
	resume    *service.ResumeService
	dashboard *service.DashboardService
	user      *service.UserService
}

type controllers struct {
	auth      *controller.AuthController
	quiz      *controller.QuizController
	career    *controller.CareerController
	skill     *controller.SkillController
	roadmap   *controller.RoadmapController
	resume    *controller.ResumeController
	dashboard *controller.DashboardController
	user      *controller.UserController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) ConfigCallbacks() []func(*config.Config) {
	return a.configCallbacks
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	sessionTTL := time.Duration(cfg.Quiz.SessionTTLHours) * time.Hour
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &repositories{
		user:     repository.NewUserRepository(db),
		session:  repository.NewSessionRepository(rdb, sessionTTL),
		result:   repository.NewQuizResultRepository(db),
		skillGap: repository.NewSkillGapRepository(db),
		roadmap:  repository.NewRoadmapRepository(db),
		resume:   repository.NewResumeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	cat := catalog.NewCatalog()
	kb := catalog.NewKnowledgeBase()
	if err := kb.Validate(); err != nil {
		return nil, err
	}

	scoring := engine.DefaultScoringConfig()
	if cfg.Quiz.HighRatingThreshold > 0 {
		scoring.HighRatingThreshold = cfg.Quiz.HighRatingThreshold
	}
	if cfg.Quiz.RatingBonus > 0 {
		scoring.RatingBonus = float64(cfg.Quiz.RatingBonus)
	}
	if cfg.Quiz.MaxSuggestions > 0 {
		scoring.MaxSuggestions = cfg.Quiz.MaxSuggestions
	}

	evaluator := engine.NewEvaluator(cat, kb, scoring)
	generator := engine.NewGenerator(kb)

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.quiz = service.NewQuizService(cat, evaluator, repos.session, repos.result)
	s.career = service.NewCareerService(kb, repos.result)
	s.skill = service.NewSkillService(generator, kb, repos.skillGap, repos.user)
	s.roadmap = service.NewRoadmapService(generator, repos.roadmap)
	s.resume = service.NewResumeService(repos.resume)
	s.dashboard = service.NewDashboardService(repos.result, repos.skillGap, repos.roadmap)
	s.user = service.NewUserService(repos.user, storage)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		quiz:      controller.NewQuizController(s.quiz),
		career:    controller.NewCareerController(s.career),
		skill:     controller.NewSkillController(s.skill),
		roadmap:   controller.NewRoadmapController(s.roadmap),
		resume:    controller.NewResumeController(s.resume),
		dashboard: controller.NewDashboardController(s.dashboard),
		user:      controller.NewUserController(s.user),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("careerpath-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
