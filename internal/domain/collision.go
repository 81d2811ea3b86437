package domain

import (
	"time"
)

// AllCounties selects every county in the reference.
const AllCounties = "all"

// SeverityFatal is the collision_severity value of a fatal crash.
const SeverityFatal = "fatal"

// Record представляет одно ДТП из выгрузки SWITRS
type Record struct {
	CaseID    string   `json:"case_id" db:"case_id"`
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`

	// CollisionDate is a calendar date at midnight UTC.
	CollisionDate time.Time `json:"collision_date" db:"collision_date"`
	// CollisionTime is the time of day as an offset from midnight.
	CollisionTime time.Duration `json:"collision_time" db:"collision_time"`

	CountyCode        string `json:"county_code" db:"county_code"`
	CollisionSeverity string `json:"collision_severity" db:"collision_severity"`

	SevereInjuryCount      int `json:"severe_injury_count" db:"severe_injury_count"`
	PedestrianKilledCount  int `json:"pedestrian_killed_count" db:"pedestrian_killed_count"`
	PedestrianInjuredCount int `json:"pedestrian_injured_count" db:"pedestrian_injured_count"`
	BicyclistKilledCount   int `json:"bicyclist_killed_count" db:"bicyclist_killed_count"`
	BicyclistInjuredCount  int `json:"bicyclist_injured_count" db:"bicyclist_injured_count"`
	KilledVictims          int `json:"killed_victims" db:"killed_victims"`
	InjuredVictims         int `json:"injured_victims" db:"injured_victims"`

	PrimaryFactor   *string `json:"primary_factor,omitempty" db:"pcf_violation_category"`
	AlcoholInvolved bool    `json:"alcohol_involved" db:"alcohol_involved"`

	PedestrianCollision bool `json:"pedestrian_collision" db:"pedestrian_collision"`
	BicycleCollision    bool `json:"bicycle_collision" db:"bicycle_collision"`
	MotorcycleCollision bool `json:"motorcycle_collision" db:"motorcycle_collision"`
	TruckCollision      bool `json:"truck_collision" db:"truck_collision"`
}

// Hour returns the hour of day (0-23) the collision happened at. Offsets outside one
// day wrap around.
func (r Record) Hour() int {
	h := int(r.CollisionTime/time.Hour) % 24
	if h < 0 {
		h += 24
	}
	return h
}

// Point returns the record location, ok is false when either coordinate is missing.
func (r Record) Point() (Point, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return Point{}, false
	}
	return Point{Lat: *r.Latitude, Lon: *r.Longitude}, true
}

// Involves reports whether the collision involved the given party type.
func (r Record) Involves(p Party) bool {
	switch p {
	case PartyPedestrian:
		return r.PedestrianCollision
	case PartyBicycle:
		return r.BicycleCollision
	case PartyMotorcycle:
		return r.MotorcycleCollision
	case PartyTruck:
		return r.TruckCollision
	default:
		return false
	}
}

// RecordSet - неизменяемый снимок записей, загруженный один раз за время жизни процесса
type RecordSet []Record

// Party - тип участника ДТП
type Party string

const (
	PartyPedestrian Party = "pedestrian"
	PartyBicycle    Party = "bicycle"
	PartyMotorcycle Party = "motorcycle"
	PartyTruck      Party = "truck"
)

// Valid reports whether p is a known party type.
func (p Party) Valid() bool {
	switch p {
	case PartyPedestrian, PartyBicycle, PartyMotorcycle, PartyTruck:
		return true
	}
	return false
}

// DateWindow is the inclusive historical window the snapshot covers.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LoadReport describes one snapshot load.
type LoadReport struct {
	Window   DateWindow `json:"window"`
	Loaded   int        `json:"loaded"`
	Excluded int        `json:"excluded"`
	LoadedAt time.Time  `json:"loaded_at"`
}
