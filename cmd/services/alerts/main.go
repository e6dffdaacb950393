package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"hotelops-dashboard/config"
	"hotelops-dashboard/internal/alerts"
	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/events"
)

// Runs the vehicle document expiry check on its own, for deployments that
// keep scheduled jobs out of the gateway process.
func main() {
	once := flag.Bool("once", false, "run a single check and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Backend.ServiceToken == "" {
		log.Fatal("BACKEND_SERVICE_TOKEN is required for the alerts service")
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.Redis.Enabled() {
		redisClient := config.NewRedisClient(cfg.Redis)
		defer redisClient.Close()
		publisher = events.NewRedisPublisher(redisClient)
	}

	var notifier alerts.Notifier = alerts.LogNotifier{}
	if cfg.Alerts.SMSEnabled() {
		notifier = alerts.NewSMSNotifier(cfg.Alerts.TwilioSID, cfg.Alerts.TwilioToken, cfg.Alerts.TwilioFrom, cfg.Alerts.RecipientSMS)
	}

	api := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	service := alerts.NewExpiryService(api, notifier, publisher, cfg.Backend.ServiceToken, cfg.Alerts.WindowDays)

	if *once {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		expiring, err := service.CheckOnce(ctx)
		if err != nil {
			log.Fatalf("Vehicle expiry check failed: %v", err)
		}
		log.Printf("✅ %d vehicle document(s) expiring", len(expiring))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := service.Start(cfg.Alerts.Schedule); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	log.Printf("🚐 Vehicle alerts service running (%s)", cfg.Alerts.Schedule)
	<-ctx.Done()
	service.Stop()
	log.Println("Vehicle alerts service stopped")
}
