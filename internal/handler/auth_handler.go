package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/service"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/response"
	"github.com/dresslab/dresslab-api/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input dto.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	res, err := h.authService.Signup(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var input dto.SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	res, err := h.authService.Signin(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Verify(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	account, err := h.authService.Verify(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: true, Account: account})
}
