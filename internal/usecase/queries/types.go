package queries

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
