package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dresslab/dresslab-api/internal/dto"
	"github.com/dresslab/dresslab-api/internal/service"
	"github.com/dresslab/dresslab-api/pkg/apperror"
	"github.com/dresslab/dresslab-api/pkg/response"
	"github.com/dresslab/dresslab-api/pkg/validator"
)

type BodyProfileHandler struct {
	bodyService service.BodyProfileService
}

func NewBodyProfileHandler(bodyService service.BodyProfileService) *BodyProfileHandler {
	return &BodyProfileHandler{
		bodyService: bodyService,
	}
}

// Get returns the stored profile, or the default representation when the
// account never saved one. The read never creates a row.
func (h *BodyProfileHandler) Get(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.bodyService.Get(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.JSON(http.StatusOK, dto.DefaultBodyProfileResponse())
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBodyProfileResponse(profile))
}

// Save creates or merges the profile: 201 when the row was created, 200 when
// an existing one was patched.
func (h *BodyProfileHandler) Save(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch dto.BodyProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	profile, created, err := h.bodyService.Upsert(c.Request.Context(), accountID, patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	message := "Body profile updated successfully"
	if created {
		status = http.StatusCreated
		message = "Body profile created successfully"
	}

	c.JSON(status, gin.H{
		"message":      message,
		"body_profile": dto.NewBodyProfileResponse(profile),
	})
}
