package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRefused   Status = "REFUSED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusPending
}

// IsValid reports membership in the status enum. Transitions are not
// restricted: any status may overwrite any other.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRefused, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
