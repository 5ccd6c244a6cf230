package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/service"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/response"
	"github.com/dresslab/dresslab-api/pkg/validator"
)

// ProfileHandler serves the /profiles family. Responses here carry the
// {"success": ...} envelope, unlike the rest of the API.
type ProfileHandler struct {
	profileService service.ProfileService
	bodyService    service.BodyProfileService
	accountService service.AccountService
}

func NewProfileHandler(
	profileService service.ProfileService,
	bodyService service.BodyProfileService,
	accountService service.AccountService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		bodyService:    bodyService,
		accountService: accountService,
	}
}

// resolveAccountID returns the id the request acts on. Routes addressing
// another account are forbidden; the path id only ever names the caller.
func (h *ProfileHandler) resolveAccountID(c *gin.Context) (uuid.UUID, error) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		return uuid.Nil, err
	}

	param := c.Param("account_id")
	if param == "" {
		return accountID, nil
	}

	targetID, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, apperror.Wrap(apperror.ErrInvalidInput, "account_id must be a valid id")
	}
	if targetID != accountID {
		return uuid.Nil, apperror.Wrap(apperror.ErrForbidden,
			"you can only access your own profile")
	}

	return accountID, nil
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	accountID, err := h.resolveAccountID(c)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	account, profile, err := h.profileService.Get(c.Request.Context(), accountID)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Success:     true,
		Account:     account,
		BodyProfile: dto.NewBodyProfileResponse(profile),
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	accountID, err := h.resolveAccountID(c)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	var input dto.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorEnvelope(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	account, profile, err := h.profileService.Update(c.Request.Context(), accountID, input)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Success:     true,
		Message:     "Profile updated successfully",
		Account:     account,
		BodyProfile: dto.NewBodyProfileResponse(profile),
	})
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	accountID, err := h.resolveAccountID(c)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	account, err := h.accountService.Delete(c.Request.Context(), accountID)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile deleted successfully",
		"account": dto.DeletedAccount{
			ID:    account.ID.String(),
			Email: account.Email,
		},
	})
}

// GetBody lazily creates the body-profile row on first read.
func (h *ProfileHandler) GetBody(c *gin.Context) {
	accountID, err := h.resolveAccountID(c)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	profile, err := h.bodyService.GetOrCreate(c.Request.Context(), accountID)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"body_profile": dto.NewBodyProfileResponse(profile),
	})
}

func (h *ProfileHandler) UpdateBody(c *gin.Context) {
	accountID, err := h.resolveAccountID(c)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	var patch dto.BodyProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.ErrorEnvelope(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	profile, _, err := h.bodyService.Upsert(c.Request.Context(), accountID, patch)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Body profile updated successfully",
		"body_profile": dto.NewBodyProfileResponse(profile),
	})
}

// ResetBody restores every body-profile field to its default.
func (h *ProfileHandler) ResetBody(c *gin.Context) {
	accountID, err := h.resolveAccountID(c)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	profile, err := h.bodyService.Reset(c.Request.Context(), accountID)
	if err != nil {
		response.ErrorEnvelope(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Body profile reset to defaults",
		"body_profile": dto.NewBodyProfileResponse(profile),
	})
}
