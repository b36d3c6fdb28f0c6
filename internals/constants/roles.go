package constants

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var AllRoles = []string{RoleUser, RoleAdmin, RoleStaff}

// AdminRoles may manage the question bank, careers, and catalog imports.
var AdminRoles = []string{RoleAdmin, RoleStaff}
