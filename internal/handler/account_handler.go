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

type AccountHandler struct {
	accountService service.AccountService
}

func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	account, err := h.accountService.Get(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch dto.AccountPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), accountID, patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account updated successfully",
		"account": account,
	})
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	account, err := h.accountService.Delete(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted successfully",
		"account": dto.DeletedAccount{
			ID:    account.ID.String(),
			Email: account.Email,
		},
	})
}
