package dto

// ─── Filter ──────────────────────────────────────────────────────────────────

// EmployeeFilter is bound from the query string of GET /v1/employees.
// Search matches first name, last name or email, case-insensitive, OR-combined.
type EmployeeFilter struct {
	Search string `form:"search"`
	Role   string `form:"role"   validate:"omitempty,oneof=ADMIN CASHIER"`
	Status string `form:"status" validate:"omitempty,oneof=active inactive"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=15" validate:"min=1,max=200"`
}

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateEmployeeRequest struct {
	Username        string  `json:"username"         validate:"required,min=3,max=150"`
	Email           string  `json:"email"            validate:"required,email"`
	FirstName       string  `json:"first_name"       validate:"required"`
	LastName        string  `json:"last_name"        validate:"required"`
	Role            string  `json:"role"             validate:"required,oneof=ADMIN CASHIER"`
	Phone           string  `json:"phone"            validate:"omitempty,intlphone"`
	Address         string  `json:"address"`
	HireDate        *string `json:"hire_date"        validate:"omitempty,datetime=2006-01-02"`
	Password        string  `json:"password"         validate:"required,min=8"`
	PasswordConfirm string  `json:"password_confirm" validate:"required"`
}

// UpdateEmployeeRequest: zero-valued fields are left untouched, except Role
// which must always be sent.
type UpdateEmployeeRequest struct {
	Email     string  `json:"email"      validate:"omitempty,email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"       validate:"required,oneof=ADMIN CASHIER"`
	Phone     string  `json:"phone"      validate:"omitempty,intlphone"`
	Address   string  `json:"address"`
	HireDate  *string `json:"hire_date"  validate:"omitempty,datetime=2006-01-02"`
	Password  string  `json:"password"   validate:"omitempty,min=8"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type EmployeeListResponse struct {
	Data     []UserResponse `json:"data"`
	Total    int64          `json:"total"`
	Active   int64          `json:"active"`
	Inactive int64          `json:"inactive"`
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
}

type ToggleStatusResponse struct {
	Success bool   `json:"success"`
	Active  bool   `json:"active"`
	Message string `json:"message"`
}
