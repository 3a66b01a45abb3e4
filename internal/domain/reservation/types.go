package reservation

type Status string

const (
	StatusActive    Status = "Active"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusConverted Status = "Converted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusConfirmed, StatusCancelled, StatusConverted:
		return true
	default:
		return false
	}
}

// IsBlocking reports whether a reservation in this status holds the vehicle
// for its interval and must be considered by the overlap check.
func (s Status) IsBlocking() bool {
	return s == StatusActive || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusConverted
}
