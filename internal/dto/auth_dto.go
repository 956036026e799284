package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest accepts a username or an email in the same field; the service
// resolves emails to usernames before checking credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=150"`
	Email           string `json:"email"            validate:"required,email"`
	FirstName       string `json:"first_name"       validate:"required"`
	LastName        string `json:"last_name"        validate:"required"`
	Role            string `json:"role"             validate:"omitempty,oneof=ADMIN CASHIER"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token           string `json:"token"            validate:"required"`
	Password        string `json:"password"         validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Phone     string  `json:"phone,omitempty"`
	Address   string  `json:"address,omitempty"`
	HireDate  *string `json:"hire_date,omitempty"` // YYYY-MM-DD
	Active    bool    `json:"active"`
	JoinedAt  string  `json:"joined_at"`
}

// MessageResponse carries the flash-style confirmation messages the UI shows.
type MessageResponse struct {
	Message string `json:"message"`
}
