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

type DesignHandler struct {
	designService service.DesignService
}

func NewDesignHandler(designService service.DesignService) *DesignHandler {
	return &DesignHandler{
		designService: designService,
	}
}

func designID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("design_id"))
	if err != nil {
		return uuid.Nil, apperror.Wrap(apperror.ErrInvalidInput, "design_id must be a valid id")
	}
	return id, nil
}

func (h *DesignHandler) List(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	designs, err := h.designService.List(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"designs": designs})
}

func (h *DesignHandler) Get(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := designID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	design, err := h.designService.Get(c.Request.Context(), id, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"design": design})
}

func (h *DesignHandler) Create(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateDesignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	design, err := h.designService.Create(c.Request.Context(), accountID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Design created successfully",
		"design":  design,
	})
}

func (h *DesignHandler) Update(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := designID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch dto.DesignPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, apperror.Wrap(apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	design, err := h.designService.Update(c.Request.Context(), id, accountID, patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Design updated successfully",
		"design":  design,
	})
}

func (h *DesignHandler) Delete(c *gin.Context) {
	accountID, err := response.GetAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := designID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.designService.Delete(c.Request.Context(), id, accountID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Design deleted successfully"})
}
