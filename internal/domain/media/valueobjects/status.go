package valueobjects

import "fmt"

// Status is the lifecycle state of a media item.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid media status: %s", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusActive
}
