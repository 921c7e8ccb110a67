package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-checkin-backend/config"
	"hotel-checkin-backend/controllers"
	"hotel-checkin-backend/dispatch"
	"hotel-checkin-backend/events"
	"hotel-checkin-backend/mailer"
	"hotel-checkin-backend/repository"
	"hotel-checkin-backend/routes"
	"hotel-checkin-backend/services"
)

func buildMailer(cfg config.EmailConfig, log *logrus.Logger) mailer.Mailer {
	switch cfg.Provider {
	case config.EmailProviderEmailJS:
		return mailer.NewEmailJSMailer(mailer.EmailJSConfig{
			ServiceID:              cfg.EmailJSServiceID,
			PublicKey:              cfg.EmailJSPublicKey,
			VerificationTemplateID: cfg.EmailJSVerificationTemplateID,
			PasscodeTemplateID:     cfg.EmailJSPasscodeTemplateID,
		})
	case config.EmailProviderSMTP:
		return mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			FromName: cfg.SMTPFromName,
		})
	default:
		log.Warn("email provider set to mock; messages will only be logged")
		return mailer.NewMockMailer(log)
	}
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info(".env not found; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	log.Info("database connection established")

	bookingRepo := repository.NewGormBookingRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)

	wmLogger := watermill.NewStdLogger(false, false)
	pubSub := events.NewPubSub(wmLogger)
	eventBus, err := events.NewEventBus(pubSub, wmLogger)
	if err != nil {
		log.WithError(err).Fatal("event bus setup failed")
	}

	mail := buildMailer(cfg.Email, log)
	dispatcher := dispatch.New(bookingRepo, mail, log)

	router, err := events.NewRouter(pubSub, wmLogger,
		cqrs.NewEventHandler("send-verification-email", dispatcher.HandleBookingCreated),
		cqrs.NewEventHandler("send-room-passcode", dispatcher.HandleBookingVerified),
	)
	if err != nil {
		log.WithError(err).Fatal("event router setup failed")
	}

	availabilityService := services.NewAvailabilityService(bookingRepo)
	bookingService := services.NewBookingService(bookingRepo, roomRepo, availabilityService, eventBus, log)
	verificationService := services.NewVerificationService(bookingRepo, eventBus, log)
	passcodeService := services.NewPasscodeService(bookingRepo, dispatcher)
	roomService := services.NewRoomService(roomRepo)

	bookingController := controllers.NewBookingController(bookingService)
	roomController := controllers.NewRoomController(roomService, availabilityService)
	checkinController := controllers.NewCheckinController(verificationService, passcodeService)

	engine := routes.SetupRouter(log, cfg.Server.CorsOrigins, bookingController, roomController, checkinController)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routerDone := make(chan error, 1)
	go func() {
		routerDone <- router.Run(ctx)
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		// The gochannel pub/sub drops events with no subscriber, so no
		// request may publish before the handlers are attached.
		<-router.Running()

		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}

	if err := <-routerDone; err != nil {
		log.WithError(err).Error("event router stopped with error")
	}

	if err := pubSub.Close(); err != nil {
		log.WithError(err).Error("pubsub close failed")
	}
	log.Info("server stopped")
}
