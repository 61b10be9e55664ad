package models

// User is the users row.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	ShopID       string `json:"shopID"`
	PasswordHash string `json:"-"`
	AuditFields
}
