// Package ledger holds the enums shared by the immediate and the
// scheduled transaction ledgers.
package ledger

type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

var AllTypes = []Type{
	Income,
	Expense,
}

func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ScheduledStatus string

const (
	Scheduled ScheduledStatus = "scheduled"
	Completed ScheduledStatus = "completed"
	Cancelled ScheduledStatus = "cancelled"
)

var AllScheduledStatuses = []ScheduledStatus{
	Scheduled,
	Completed,
	Cancelled,
}

func (s ScheduledStatus) IsValid() bool {
	for _, v := range AllScheduledStatuses {
		if s == v {
			return true
		}
	}
	return false
}
