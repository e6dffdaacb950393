package models

const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableDirty       = "dirty"
	TableMaintenance = "maintenance"
)

var TableStatuses = []string{TableAvailable, TableOccupied, TableReserved, TableDirty, TableMaintenance}

func IsTableStatus(s string) bool { return contains(TableStatuses, s) }

type Table struct {
	ID          string `json:"_id,omitempty"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status,omitempty"`
}
