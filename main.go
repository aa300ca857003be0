package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"playfield/config"
	"playfield/cron"
	"playfield/database"
	accountRepoPkg "playfield/database/repository/account"
	bookingRepoPkg "playfield/database/repository/booking"
	facilityRepoPkg "playfield/database/repository/facility"
	serviceRepoPkg "playfield/database/repository/service"
	timeslotRepoPkg "playfield/database/repository/timeslot"
	"playfield/handlers"
	"playfield/routes"
	"playfield/services/account"
	"playfield/services/booking"
	"playfield/services/facility"
	"playfield/services/notification"
	"playfield/services/storage"
	"playfield/services/timeslot"
	"playfield/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	facilityRepo := facilityRepoPkg.NewMongoFacilityRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	slotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	for name, ensure := range map[string]func() error{
		"accounts":   accountRepo.EnsureIndexes,
		"facilities": facilityRepo.EnsureIndexes,
		"services":   serviceRepo.EnsureIndexes,
		"timeslots":  slotRepo.EnsureIndexes,
		"bookings":   bookingRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Image storage is optional; facilities work without it, uploads fail.
	var storageService storage.StorageService
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: cloudinary not configured, image uploads disabled: %v", err)
	} else {
		storageService = storage.NewStorageService(cld)
	}

	// Services.
	accountService := &account.DefaultAccountService{Repo: accountRepo}
	notificationService := &notification.DefaultNotificationService{Accounts: accountRepo}
	facilityService := &facility.DefaultFacilityService{
		Repo:     facilityRepo,
		Services: serviceRepo,
		Slots:    slotRepo,
		Storage:  storageService,
	}
	slotService := &timeslot.DefaultTimeSlotService{
		Slots:      slotRepo,
		Facilities: facilityRepo,
		Services:   serviceRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Slots:        slotRepo,
		Bookings:     bookingRepo,
		Services:     serviceRepo,
		Facilities:   facilityRepo,
		Notifier:     notificationService,
		Reminders:    cron.NewReminderScheduler(),
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,
		Accounts:    accountService,
		Facilities:  facilityService,
		Slots:       slotService,
		Bookings:    bookingService,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
