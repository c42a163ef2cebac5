package entity

// Role is stored as a plain string on users.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleClinicAdmin Role = "clinic_admin"
	RoleDoctor      Role = "doctor"
	RoleSecretary   Role = "secretary"
)
