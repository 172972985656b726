package identity

// AuthRequest is the body of register and login requests.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	SolveCount int    `json:"solve_count"`
	Token      string `json:"token"`
}
