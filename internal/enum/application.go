package enum

type ApplicationStatus string

const (
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusPending   ApplicationStatus = "Pending"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
)

func (t ApplicationStatus) String() string {
	return string(t)
}

// Priority ranks statuses so aggregation can keep the strongest signal
// seen across duplicate applications.
func (t ApplicationStatus) Priority() int {
	switch t {
	case ApplicationStatusInterview:
		return 3
	case ApplicationStatusPending:
		return 2
	case ApplicationStatusRejected:
		return 1
	default:
		return 0
	}
}
