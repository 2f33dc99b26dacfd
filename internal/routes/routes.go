package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/audit"
	"github.com/nailsdg/salon-api/internal/cache"
	"github.com/nailsdg/salon-api/internal/config"
	"github.com/nailsdg/salon-api/internal/handlers"
	infraRepo "github.com/nailsdg/salon-api/internal/infra/repository"
	"github.com/nailsdg/salon-api/internal/mail"
	"github.com/nailsdg/salon-api/internal/middleware"
	"github.com/nailsdg/salon-api/internal/notify"
	"github.com/nailsdg/salon-api/internal/storage"
	"github.com/nailsdg/salon-api/internal/stories"
	ucAccounting "github.com/nailsdg/salon-api/internal/usecase/accounting"
	ucBooking "github.com/nailsdg/salon-api/internal/usecase/booking"
)

type Deps struct {
	DB           *gorm.DB
	Config       *config.Config
	Logger       zerolog.Logger
	Store        *storage.S3Store
	Cache        *cache.Cache
	Mailer       *mail.Mailer
	Push         *notify.Dispatcher
	StoryService *stories.Service
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)
	accountingRepo := infraRepo.NewAccountingGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Logger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, deps.Push)
	bookedSlotsUC := ucBooking.NewListBookedSlots(bookingRepo)
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	listAllBookingsUC := ucBooking.NewListAllBookings(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, deps.Push)

	statsUC := ucAccounting.NewGetStats(accountingRepo, deps.Config.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config, deps.Mailer, deps.Logger)
	userHandler := handlers.NewUserHandler(deps.DB, deps.Store, deps.Logger)
	serviceHandler := handlers.NewServiceHandler(deps.DB, deps.Store, auditDispatcher, deps.Logger)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		bookedSlotsUC,
		listUserBookingsUC,
		listAllBookingsUC,
		updateStatusUC,
		auditDispatcher,
		deps.Cache,
	)
	storyHandler := handlers.NewStoryHandler(deps.StoryService, deps.Store, auditDispatcher, deps.Logger)
	accountingHandler := handlers.NewAccountingHandler(statsUC, deps.Cache, deps.Config.StatsCacheTTL, deps.Logger)
	notificationHandler := handlers.NewNotificationHandler(deps.DB)
	versionHandler := handlers.NewVersionHandler(deps.DB, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/verify", authHandler.Verify)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/version", versionHandler.Get)

	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(deps.Config))
	{
		secured.POST("/bookings", bookingHandler.Create)
		secured.GET("/bookings/user/:userId", bookingHandler.ListByUser)
		secured.GET("/bookings/booked-slots/:date", bookingHandler.BookedSlots)

		secured.PATCH("/users/:id", userHandler.Update)
		secured.POST("/users/:id/profile-picture", userHandler.UploadProfilePicture)

		secured.POST("/notifications/token/:userId", notificationHandler.UpdateToken)

		secured.GET("/stories", storyHandler.ListActive)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(deps.Config), middleware.RequireAdmin())
	{
		admin.GET("/bookings", bookingHandler.ListAll)
		admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		admin.GET("/accounting/stats", accountingHandler.GetStats)

		admin.POST("/services", serviceHandler.Create)
		admin.PATCH("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)
		admin.POST("/services/upload", serviceHandler.UploadImage)
		admin.PATCH("/services/:id/image", serviceHandler.UpdateImage)

		admin.POST("/stories", storyHandler.Create)
		admin.DELETE("/stories/:id", storyHandler.Delete)
		admin.POST("/stories/upload", storyHandler.UploadImage)

		admin.POST("/version/update", versionHandler.Update)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
