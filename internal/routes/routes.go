package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/weecompany/reservas-api/internal/audit"
	"github.com/weecompany/reservas-api/internal/config"
	"github.com/weecompany/reservas-api/internal/handlers"
	infraRepo "github.com/weecompany/reservas-api/internal/infra/repository"
	"github.com/weecompany/reservas-api/internal/middleware"
	"github.com/weecompany/reservas-api/internal/ratelimit"
	"github.com/weecompany/reservas-api/internal/token"
	ucAuth "github.com/weecompany/reservas-api/internal/usecase/auth"
	ucReservation "github.com/weecompany/reservas-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	tokens := token.New(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	auditDispatcher := audit.NewDispatcher(audit.NewLogger(db), log)

	var limiter *ratelimit.LoginLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewLoginLimiter(rdb, 10, time.Minute)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegisterUser(userRepo, auditDispatcher)
	loginUC := ucAuth.NewLoginUser(userRepo, tokens, auditDispatcher)

	createReservationUC := ucReservation.NewCreateReservation(reservationRepo, auditDispatcher)
	updateReservationUC := ucReservation.NewUpdateReservation(reservationRepo, auditDispatcher)
	deleteReservationUC := ucReservation.NewDeleteReservation(reservationRepo, auditDispatcher)
	listAllReservationsUC := ucReservation.NewListAllReservations(reservationRepo)
	listOwnReservationsUC := ucReservation.NewListOwnReservations(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, limiter, cfg)
	meHandler := handlers.NewMeHandler(userRepo)
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
		listAllReservationsUC,
		listOwnReservationsUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.POST("/auth/registro", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/reservas", reservationHandler.ListAll)
		secured.GET("/reservas/mis-reservas", reservationHandler.ListOwn)
		secured.POST("/reservas", reservationHandler.Create)
		secured.PUT("/reservas/:id", reservationHandler.Update)
		secured.DELETE("/reservas/:id", reservationHandler.Delete)
	}
}
