package constants

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var AllRoles = []string{RoleAdmin, RoleStaff}
