package entity

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleStaff  UserRole = "staff"
	RoleDriver UserRole = "driver"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleDriver
}

// User is a back-office or driver-portal account. Customers never hold
// accounts; the funnel is anonymous.
type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Active       bool     `db:"is_active"`
}
