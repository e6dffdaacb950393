package alerts

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/events"
	"hotelops-dashboard/internal/models"
)

type VehicleSource interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
}

type ExpiryService struct {
	vehicles     VehicleSource
	notifier     Notifier
	events       events.Publisher
	serviceToken string
	window       time.Duration
	now          func() time.Time
	cron         *cron.Cron
}

func NewExpiryService(vehicles VehicleSource, notifier Notifier, publisher events.Publisher, serviceToken string, windowDays int) *ExpiryService {
	return &ExpiryService{
		vehicles:     vehicles,
		notifier:     notifier,
		events:       publisher,
		serviceToken: serviceToken,
		window:       time.Duration(windowDays) * 24 * time.Hour,
		now:          time.Now,
	}
}

// Start schedules CheckOnce on spec (standard 5-field cron syntax).
func (s *ExpiryService) Start(spec string) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.CheckOnce(ctx); err != nil {
			log.Printf("vehicle expiry check failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	s.cron.Start()
	log.Printf("Vehicle expiry scheduler started (%s)", spec)
	return nil
}

func (s *ExpiryService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// CheckOnce fetches vehicles, sends one notification summarising every
// expiring document and publishes a vehicle.expiry event.
func (s *ExpiryService) CheckOnce(ctx context.Context) ([]VehicleExpiry, error) {
	if s.serviceToken != "" {
		ctx = backend.WithToken(ctx, s.serviceToken)
	}
	vehicles, err := s.vehicles.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	expiring := Expiring(vehicles, s.now(), s.window)
	if len(expiring) == 0 {
		log.Println("No vehicle documents expiring")
		return expiring, nil
	}

	if err := s.notifier.Notify(ctx, Summary(expiring)); err != nil {
		log.Printf("vehicle expiry notification failed: %v", err)
	}
	if err := s.events.Publish(ctx, events.Event{
		Type:      "vehicle.expiry",
		Resource:  "vehicles",
		Timestamp: s.now(),
		Data:      expiring,
	}); err != nil {
		log.Printf("vehicle expiry event failed: %v", err)
	}
	return expiring, nil
}

func Summary(expiring []VehicleExpiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d vehicle document(s) need attention:", len(expiring))
	for _, e := range expiring {
		if e.Expired {
			fmt.Fprintf(&b, "\n%s %s expired %s", e.VehicleNumber, e.Document, e.ExpiresOn.Format(models.DateLayout))
		} else {
			fmt.Fprintf(&b, "\n%s %s expires %s (%d days)", e.VehicleNumber, e.Document, e.ExpiresOn.Format(models.DateLayout), e.DaysLeft)
		}
	}
	return b.String()
}
