package job

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusClosed     Status = "CLOSED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusInProgress, StatusCancelled:
		return true
	default:
		return false
	}
}

type WorkType string

const (
	WorkTypeFullTime  WorkType = "FULL_TIME"
	WorkTypePartTime  WorkType = "PART_TIME"
	WorkTypeContract  WorkType = "CONTRACT"
	WorkTypeTemporary WorkType = "TEMPORARY"
)

func (w WorkType) String() string {
	return string(w)
}

func (w WorkType) IsValid() bool {
	switch w {
	case WorkTypeFullTime, WorkTypePartTime, WorkTypeContract, WorkTypeTemporary:
		return true
	default:
		return false
	}
}
