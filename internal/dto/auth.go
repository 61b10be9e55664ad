package dto

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token together with the claims the
// front-end needs to shape its screens.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userID"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ShopID   string `json:"shopID"`
	ShopName string `json:"shopName"`
}
