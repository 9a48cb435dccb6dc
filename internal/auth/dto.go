package auth

// RegisterRequest creates an operator account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest authenticates an operator.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO is the boundary shape for an operator. It never carries the
// password hash.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult is the successful login body.
type LoginResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
