package valueobjects

// Status is the onboarding lifecycle state of a company.
type Status string

const (
	// StatusPending is the initial state for companies created from a
	// payment webhook before any staff action.
	StatusPending Status = "PENDING"
	// StatusNew is the initial state for companies created through the
	// dashboard form.
	StatusNew Status = "NEW"
	// StatusInProgress means onboarding steps have started.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusOnboarded means the onboarding checklist has completed and the
	// monthly content cycle can begin.
	StatusOnboarded Status = "ONBOARDED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusNew, StatusInProgress, StatusOnboarded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// The lifecycle only moves forward; there is no way back to PENDING.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusNew || target == StatusInProgress
	case StatusNew:
		return target == StatusInProgress || target == StatusOnboarded
	case StatusInProgress:
		return target == StatusOnboarded
	default:
		return false
	}
}
