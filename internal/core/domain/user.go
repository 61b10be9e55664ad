package domain

// UserRole distinguishes back-office administrators from shop staff.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User represents an operator account. Each operator belongs to exactly one
// shop; the shop binding travels with the auth claims.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	ShopID       string   `json:"shopID"`
	PasswordHash string   `json:"-"`
	AuditFields
}
