package alerts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/events"
	"hotelops-dashboard/internal/models"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

var fleet = []models.Vehicle{
	{ID: "v1", VehicleNumber: "KA01AB1234", InsuranceValidTill: "2026-03-20", RegistrationExpiry: "2030-01-01"},
	{ID: "v2", VehicleNumber: "KA02CD5678", InsuranceValidTill: "2026-03-01T00:00:00Z"},
	{ID: "v3", VehicleNumber: "KA03EF9012", RegistrationExpiry: "2026-04-05"},
	{ID: "v4", VehicleNumber: "KA04GH3456", InsuranceValidTill: "sometime"},
}

func TestExpiring(t *testing.T) {
	got := Expiring(fleet, now, 30*24*time.Hour)
	if len(got) != 3 {
		t.Fatalf("got %d expiring documents, want 3: %+v", len(got), got)
	}
	if got[0].VehicleID != "v2" || !got[0].Expired || got[0].DaysLeft != -9 {
		t.Fatalf("first = %+v", got[0])
	}
	if got[1].VehicleID != "v1" || got[1].Document != DocumentInsurance || got[1].DaysLeft != 10 {
		t.Fatalf("second = %+v", got[1])
	}
	if got[2].Document != DocumentRegistration || got[2].DaysLeft != 26 {
		t.Fatalf("third = %+v", got[2])
	}
}

func TestExpiringNarrowWindow(t *testing.T) {
	got := Expiring(fleet, now, 0)
	if len(got) != 1 || got[0].VehicleID != "v2" {
		t.Fatalf("got %+v, want only the expired insurance", got)
	}
}

type fakeVehicles struct {
	token string
	err   error
}

func (f *fakeVehicles) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	f.token = backend.TokenFrom(ctx)
	return fleet, f.err
}

type captureNotifier struct{ messages []string }

func (c *captureNotifier) Notify(_ context.Context, msg string) error {
	c.messages = append(c.messages, msg)
	return nil
}

func TestCheckOnce(t *testing.T) {
	src := &fakeVehicles{}
	notifier := &captureNotifier{}
	rec := &events.Recorder{}
	svc := NewExpiryService(src, notifier, rec, "svc-token", 30)
	svc.now = func() time.Time { return now }

	got, err := svc.CheckOnce(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d", len(got))
	}
	if src.token != "svc-token" {
		t.Fatalf("backend token = %q", src.token)
	}
	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "KA02CD5678 insurance expired 2026-03-01") {
		t.Fatalf("messages = %v", notifier.messages)
	}
	if types := rec.Types(); len(types) != 1 || types[0] != "vehicle.expiry" {
		t.Fatalf("events = %v", types)
	}
}

func TestCheckOnceBackendError(t *testing.T) {
	svc := NewExpiryService(&fakeVehicles{err: errors.New("down")}, LogNotifier{}, events.Noop{}, "", 30)
	if _, err := svc.CheckOnce(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	svc := NewExpiryService(&fakeVehicles{}, LogNotifier{}, events.Noop{}, "", 30)
	if err := svc.Start("every day"); err == nil {
		svc.Stop()
		t.Fatal("expected cron spec error")
	}
}
