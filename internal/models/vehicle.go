package models

const (
	VehicleAvailable   = "available"
	VehicleInUse       = "in-use"
	VehicleMaintenance = "maintenance"
	VehicleInactive    = "inactive"
)

var VehicleStatuses = []string{VehicleAvailable, VehicleInUse, VehicleMaintenance, VehicleInactive}

func IsVehicleStatus(s string) bool { return contains(VehicleStatuses, s) }

type Vehicle struct {
	ID                 string `json:"_id,omitempty"`
	VehicleNumber      string `json:"vehicleNumber"`
	Model              string `json:"model,omitempty"`
	Type               string `json:"type,omitempty"`
	SeatingCapacity    int    `json:"seatingCapacity"`
	Status             string `json:"status,omitempty"`
	InsuranceValidTill string `json:"insuranceValidTill,omitempty"`
	RegistrationExpiry string `json:"registrationExpiry,omitempty"`
}
