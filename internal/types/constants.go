package types

const ContextUserKey = "user"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusPending || status == StatusInactive
}
