package task

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

var AllPriorities = []TaskPriority{
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

func (p TaskPriority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}
