package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/models"
)

var hundred = decimal.NewFromInt(100)

func Bill(b models.Bill) Violations {
	v := Violations{}
	Required("orderId", b.OrderID, v)
	Required("tableNo", b.TableNo, v)
	PositiveDecimal("subtotal", b.Subtotal, v)
	NonNegativeDecimal("discount", b.Discount, v)
	PositiveDecimal("totalAmount", b.TotalAmount, v)
	OneOf("paymentMethod", b.PaymentMethod, models.IsPaymentMethod, v)
	return v
}

func Payment(method string, amount decimal.Decimal, split *models.SplitPayment) Violations {
	v := Violations{}
	Required("paymentMethod", method, v)
	OneOf("paymentMethod", method, models.IsPaymentMethod, v)
	if method == models.MethodSplit {
		if split == nil {
			v.add("splitPayment", CodeRequired)
			return v
		}
		NonNegativeDecimal("splitPayment.cash", split.Cash, v)
		NonNegativeDecimal("splitPayment.card", split.Card, v)
		NonNegativeDecimal("splitPayment.upi", split.UPI, v)
		if !split.Cash.Add(split.Card).Add(split.UPI).IsPositive() {
			v.add("splitPayment", CodePositive)
		}
		return v
	}
	PositiveDecimal("paidAmount", amount, v)
	return v
}

func MenuItem(m models.MenuItem) Violations {
	v := Violations{}
	Required("name", m.Name, v)
	PositiveDecimal("price", m.Price, v)
	RangeDecimal("discount", m.Discount, decimal.Zero, hundred, v)
	Required("category", m.Category.ID, v)
	return v
}

func Category(c models.Category) Violations {
	v := Violations{}
	Required("name", c.Name, v)
	OneOf("status", c.Status, models.IsCategoryStatus, v)
	return v
}

func Order(o models.Order) Violations {
	v := Violations{}
	Required("staffName", o.StaffName, v)
	Required("tableNo", o.TableNo, v)
	Phone("phoneNumber", o.PhoneNumber, v)
	NonNegativeDecimal("discount", o.Discount, v)
	OneOf("status", o.Status, models.IsOrderStatus, v)
	if o.OrderType != "" && o.OrderType != models.OrderTypeRegular && o.OrderType != models.OrderTypeInHouse {
		v.add("orderType", CodeInvalidChoice)
	}
	if o.InHouse() {
		Required("bookingId", o.BookingID, v)
	}
	if len(o.Items) == 0 {
		v.add("items", CodeRequired)
	}
	for i, item := range o.Items {
		Required(fmt.Sprintf("items[%d].itemId", i), item.ItemID, v)
		PositiveInt(fmt.Sprintf("items[%d].quantity", i), item.Quantity, v)
	}
	return v
}

func Table(t models.Table) Violations {
	v := Violations{}
	Required("tableNumber", t.TableNumber, v)
	PositiveInt("capacity", t.Capacity, v)
	OneOf("status", t.Status, models.IsTableStatus, v)
	return v
}

func TableBooking(b models.TableBooking) Violations {
	v := Violations{}
	Required("guestName", b.GuestName, v)
	Required("phone", b.Phone, v)
	Phone("phone", b.Phone, v)
	Required("date", b.Date, v)
	Date("date", b.Date, v)
	PositiveInt("guests", b.Guests, v)
	NonNegativeDecimal("advanceAmount", b.AdvanceAmount, v)
	OneOf("status", b.Status, models.IsBookingStatus, v)
	return v
}

func Reservation(r models.Reservation) Violations {
	v := Violations{}
	Required("guestName", r.GuestName, v)
	Required("phone", r.Phone, v)
	Phone("phone", r.Phone, v)
	Required("checkInDate", r.CheckInDate, v)
	Required("checkOutDate", r.CheckOutDate, v)
	Date("checkInDate", r.CheckInDate, v)
	Date("checkOutDate", r.CheckOutDate, v)
	DateAfter("checkOutDate", r.CheckInDate, r.CheckOutDate, v)
	PositiveInt("guests", r.Guests, v)
	NonNegativeDecimal("advanceAmount", r.AdvanceAmount, v)
	NonNegativeDecimal("rate", r.Rate, v)
	OneOf("status", r.Status, models.IsReservationStatus, v)
	return v
}

func Vehicle(ve models.Vehicle) Violations {
	v := Violations{}
	Required("vehicleNumber", ve.VehicleNumber, v)
	PositiveInt("seatingCapacity", ve.SeatingCapacity, v)
	OneOf("status", ve.Status, models.IsVehicleStatus, v)
	Date("insuranceValidTill", ve.InsuranceValidTill, v)
	Date("registrationExpiry", ve.RegistrationExpiry, v)
	return v
}

func HousekeepingTask(t models.HousekeepingTask) Violations {
	v := Violations{}
	Required("roomId", t.RoomID, v)
	Required("cleaningType", t.CleaningType, v)
	Required("priority", t.Priority, v)
	OneOf("cleaningType", t.CleaningType, models.IsCleaningType, v)
	OneOf("priority", t.Priority, models.IsTaskPriority, v)
	OneOf("status", t.Status, models.IsTaskStatus, v)
	return v
}

// Status checks a bare status update against the entity's set. There is no
// transition graph; any member may replace any other.
func Status(value string, allowed func(string) bool) Violations {
	v := Violations{}
	Required("status", value, v)
	OneOf("status", value, allowed, v)
	return v
}
