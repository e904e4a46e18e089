package cart

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid || s == StatusCancelled
}

// Settled lines are immutable history; only status may ever have
// changed to get them there.
func (s Status) Settled() bool {
	return s == StatusPaid || s == StatusCancelled
}
