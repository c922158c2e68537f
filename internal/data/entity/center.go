package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type CenterStatus string

const (
	CenterOpen   CenterStatus = "open"
	CenterClosed CenterStatus = "closed"
)

type CenterCategory string

const (
	CategoryVehicleRepair     CenterCategory = "Vehicle Repair"
	CategoryHealthcare        CenterCategory = "Healthcare"
	CategoryGovernmentService CenterCategory = "Government Service"
	CategoryPersonalCare      CenterCategory = "Personal Care"
	CategoryElectronicsRepair CenterCategory = "Electronics Repair"
)

type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "low"
	CrowdMedium CrowdLevel = "medium"
	CrowdHigh   CrowdLevel = "high"
)

type WaitSeverity string

const (
	WaitSeverityLow    WaitSeverity = "low"
	WaitSeverityMedium WaitSeverity = "medium"
	WaitSeverityHigh   WaitSeverity = "high"
)

// Center is a service location offering queue-based walk-in service and
// slot-based appointments. Crowd is always derived from Queue via
// CrowdLevelFor; it is stored here only so snapshots carry it.
type Center struct {
	ID             uuid.UUID
	Name           string
	Category       CenterCategory
	Icon           string
	Address        string
	DistanceKm     float64
	Queue          int
	AvgServiceTime int // minutes per person
	Slots          int
	SlotsBooked    int
	Status         CenterStatus
	Rating         float64
	Crowd          CrowdLevel
	Lat            float64
	Lng            float64
}

// EstimatedWait returns the estimated wait in minutes for a queue of the
// given length: queue × average per-person service time.
func EstimatedWait(queue, avgServiceTime int) int {
	return queue * avgServiceTime
}

func (c *Center) EstimatedWait() int {
	return EstimatedWait(c.Queue, c.AvgServiceTime)
}

func (c *Center) SlotsLeft() int {
	return c.Slots - c.SlotsBooked
}

// CrowdLevelFor maps a queue length to a crowd level. The thresholds are
// fixed: up to 3 is low, up to 8 is medium, anything longer is high.
func CrowdLevelFor(queue int) CrowdLevel {
	switch {
	case queue <= 3:
		return CrowdLow
	case queue <= 8:
		return CrowdMedium
	default:
		return CrowdHigh
	}
}

// FormatWait renders a wait in minutes for display: "No Wait" for zero,
// "~45m" under an hour, "~1h 30m" from an hour up.
func FormatWait(minutes int) string {
	if minutes == 0 {
		return "No Wait"
	}
	if minutes < 60 {
		return fmt.Sprintf("~%dm", minutes)
	}
	return fmt.Sprintf("~%dh %dm", minutes/60, minutes%60)
}

// WaitSeverityFor bands a wait for display coloring: under 30 minutes is
// low, under 90 medium, 90 and above high.
func WaitSeverityFor(minutes int) WaitSeverity {
	switch {
	case minutes < 30:
		return WaitSeverityLow
	case minutes < 90:
		return WaitSeverityMedium
	default:
		return WaitSeverityHigh
	}
}
