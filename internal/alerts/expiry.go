package alerts

import (
	"sort"
	"time"

	"hotelops-dashboard/internal/models"
)

const (
	DocumentInsurance    = "insurance"
	DocumentRegistration = "registration"
)

type VehicleExpiry struct {
	VehicleID     string    `json:"vehicleId"`
	VehicleNumber string    `json:"vehicleNumber"`
	Document      string    `json:"document"`
	ExpiresOn     time.Time `json:"expiresOn"`
	DaysLeft      int       `json:"daysLeft"`
	Expired       bool      `json:"expired"`
}

// Expiring lists vehicle documents that expired already or expire within
// window of now, soonest first. Vehicles with missing or unparseable dates
// are skipped.
func Expiring(vehicles []models.Vehicle, now time.Time, window time.Duration) []VehicleExpiry {
	today := truncateDay(now)
	limit := today.Add(window)

	out := []VehicleExpiry{}
	for _, v := range vehicles {
		for _, doc := range []struct {
			kind  string
			value string
		}{
			{DocumentInsurance, v.InsuranceValidTill},
			{DocumentRegistration, v.RegistrationExpiry},
		} {
			if doc.value == "" {
				continue
			}
			expires, err := models.ParseDate(doc.value)
			if err != nil {
				continue
			}
			expires = truncateDay(expires)
			if expires.After(limit) {
				continue
			}
			days := int(expires.Sub(today).Hours() / 24)
			out = append(out, VehicleExpiry{
				VehicleID:     v.ID,
				VehicleNumber: v.VehicleNumber,
				Document:      doc.kind,
				ExpiresOn:     expires,
				DaysLeft:      days,
				Expired:       days < 0,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ExpiresOn.Before(out[j].ExpiresOn) })
	return out
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
