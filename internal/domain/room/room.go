package room

import "time"

type Floor string

const (
	FloorGround Floor = "ground"
	FloorFirst  Floor = "first"
	FloorSecond Floor = "second"
	FloorThird  Floor = "third"
	FloorFourth Floor = "fourth"
	FloorFifth  Floor = "fifth"
)

func (f Floor) Valid() bool {
	switch f {
	case FloorGround, FloorFirst, FloorSecond, FloorThird, FloorFourth, FloorFifth:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusMaintenance, StatusInactive:
		return true
	}
	return false
}

type Room struct {
	ID                 string
	Code               string
	TypeID             string
	Floor              Floor
	Building           string
	Capacity           int
	DailyRate          float64
	EquipmentIDs       []string
	HasBalcony         bool
	HasKitchen         bool
	HasBathroom        bool
	HasAirConditioning bool
	HasWifi            bool
	Status             Status
	IsActive           bool
	Description        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r Room) HasEquipment(equipmentID string) bool {
	for _, id := range r.EquipmentIDs {
		if id == equipmentID {
			return true
		}
	}
	return false
}
