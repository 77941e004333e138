package models

import "strings"

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type UpdateUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
	Role      string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	switch strings.TrimSpace(r.Role) {
	case "user", "admin":
	default:
		errs = append(errs, "role must be user or admin")
	}

	return validationError(errs)
}

// UpdateProfileRequest carries a partial self-service profile edit. Only
// the fields present in the payload change; email, username and role stay
// admin-managed.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Country   *string `json:"country"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs []string

	if r.FirstName == nil && r.LastName == nil && r.Country == nil {
		errs = append(errs, "at least one field is required")
	}
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		errs = append(errs, "firstName cannot be blank")
	}

	return validationError(errs)
}

type UserListResponse struct {
	Count int            `json:"count"`
	Users []UserResponse `json:"users"`
}

// UserDetailsResponse is the admin console aggregate view of one user.
type UserDetailsResponse struct {
	User         UserResponse          `json:"user"`
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
	Cards        []CardResponse        `json:"cards"`
	Loans        []LoanResponse        `json:"loans"`
}
