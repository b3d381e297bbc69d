package project

type ProjectStatus string

const (
	StatusOnTrack        ProjectStatus = "on_track"
	StatusNeedsAttention ProjectStatus = "needs_attention"
	StatusBlocked        ProjectStatus = "blocked"
	StatusCompleted      ProjectStatus = "completed"
	StatusArchived       ProjectStatus = "archived"
)

var AllStatuses = []ProjectStatus{
	StatusOnTrack,
	StatusNeedsAttention,
	StatusBlocked,
	StatusCompleted,
	StatusArchived,
}

func (s ProjectStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
