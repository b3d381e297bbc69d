package cycle

type CycleKind string

const (
	KindDay    CycleKind = "day"
	KindWeek   CycleKind = "week"
	KindCustom CycleKind = "custom"
)

var AllKinds = []CycleKind{
	KindDay,
	KindWeek,
	KindCustom,
}

func (k CycleKind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}
