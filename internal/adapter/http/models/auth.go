package models

import "strings"

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Country    string `json:"country"`
	SeedPhrase string `json:"seed_phrase"`
}

func (r RegisterRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !strings.Contains(email, "@") {
		errs = append(errs, "email is not valid")
	}
	if len(strings.Fields(r.SeedPhrase)) < 12 {
		errs = append(errs, "seed_phrase must contain at least 12 words")
	}

	return validationError(errs)
}

type LoginRequest struct {
	Email      string `json:"email"`
	SeedPhrase string `json:"seedPhrase"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.SeedPhrase) == "" {
		errs = append(errs, "seedPhrase is required")
	}

	return validationError(errs)
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
