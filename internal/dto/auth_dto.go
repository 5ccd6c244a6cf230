package dto

import "github.com/dresslab/dresslab-api/internal/model"

type SignupInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	UserType  string `json:"userType" binding:"required,oneof=individual business student"`
}

type SigninInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message     string         `json:"message"`
	Account     *model.Account `json:"account"`
	AccessToken string         `json:"access_token"`
}

type VerifyResponse struct {
	Valid   bool           `json:"valid"`
	Account *model.Account `json:"account"`
}
