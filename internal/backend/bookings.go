package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"hotelops-dashboard/internal/models"
)

// Restaurant table bookings.

func (c *Client) ListTableBookings(ctx context.Context) ([]models.TableBooking, error) {
	return getList[models.TableBooking](ctx, c, "/api/restaurant-reservations/all", nil, "reservations", "bookings")
}

func (c *Client) CreateTableBooking(ctx context.Context, b models.TableBooking) (models.TableBooking, error) {
	return send[models.TableBooking](ctx, c, http.MethodPost, "/api/restaurant-reservations/create", b, "reservation", "booking")
}

func (c *Client) UpdateTableBooking(ctx context.Context, id string, b models.TableBooking) (models.TableBooking, error) {
	return send[models.TableBooking](ctx, c, http.MethodPut, "/api/restaurant-reservations/"+escape(id), b, "reservation", "booking")
}

func (c *Client) UpdateTableBookingStatus(ctx context.Context, id, status string) (models.TableBooking, error) {
	return send[models.TableBooking](ctx, c, http.MethodPatch, "/api/restaurant-reservations/"+escape(id)+"/status",
		map[string]string{"status": status}, "reservation", "booking")
}

// Hotel room reservations.

func (c *Client) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return getList[models.Reservation](ctx, c, "/api/bookings/all", nil, "bookings")
}

func (c *Client) CreateReservation(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	return send[models.Reservation](ctx, c, http.MethodPost, "/api/bookings/book", r, "booking")
}

func (c *Client) UpdateReservationStatus(ctx context.Context, id, status string) (models.Reservation, error) {
	return send[models.Reservation](ctx, c, http.MethodPatch, "/api/bookings/"+escape(id)+"/status",
		map[string]string{"status": status}, "booking")
}

// NextGRCNo asks the backend for the next Guest Registration Card number.
func (c *Client) NextGRCNo(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/bookings/grc/new", nil, nil)
	if err != nil {
		return "", err
	}
	root := gjson.ParseBytes(body)
	if err := checkEnvelope(root); err != nil {
		return "", err
	}
	for _, path := range []string{"grcNo", "data.grcNo", "data"} {
		if r := root.Get(path); r.Exists() && (r.Type == gjson.String || r.Type == gjson.Number) {
			return r.String(), nil
		}
	}
	return "", fmt.Errorf("%w: no grcNo in response", ErrUnexpectedShape)
}

type RoomQuery struct {
	CheckIn  string
	CheckOut string
	RoomType string
}

func (q RoomQuery) values() url.Values {
	v := url.Values{}
	if q.CheckIn != "" {
		v.Set("checkInDate", q.CheckIn)
	}
	if q.CheckOut != "" {
		v.Set("checkOutDate", q.CheckOut)
	}
	if q.RoomType != "" {
		v.Set("roomType", q.RoomType)
	}
	return v
}

func (c *Client) AvailableRooms(ctx context.Context, q RoomQuery) ([]models.Room, error) {
	return getList[models.Room](ctx, c, "/api/rooms/available", q.values(), "rooms", "availableRooms")
}
