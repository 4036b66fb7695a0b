package notification

type Type string

const (
	TypeNewJobPosting     Type = "NEW_JOB_POSTING"
	TypeApplicationStatus Type = "APPLICATION_STATUS"
	TypeJobApplication    Type = "JOB_APPLICATION"
	TypeWorkReminder      Type = "WORK_REMINDER"
	TypeRatingReminder    Type = "RATING_REMINDER"
	TypeAccountUpdate     Type = "ACCOUNT_UPDATE"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeNewJobPosting, TypeApplicationStatus, TypeJobApplication,
		TypeWorkReminder, TypeRatingReminder, TypeAccountUpdate:
		return true
	default:
		return false
	}
}

type DeliveryStatus string

const (
	StatusSent      DeliveryStatus = "SENT"
	StatusDelivered DeliveryStatus = "DELIVERED"
	StatusFailed    DeliveryStatus = "FAILED"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case StatusSent, StatusDelivered, StatusFailed:
		return true
	default:
		return false
	}
}
