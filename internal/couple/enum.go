package couple

type Status string

// StatusRejected is part of the stored model, but no operation sets it.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

var AllStatuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusRejected,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
