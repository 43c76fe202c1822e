package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "wheelspin-backend/internal/common/errors"
	"wheelspin-backend/internal/common/middleware"
	"wheelspin-backend/internal/features/wheel/mapper"
	"wheelspin-backend/internal/features/wheel/models/dto"
	"wheelspin-backend/internal/features/wheel/selector"
	wheelservice "wheelspin-backend/internal/features/wheel/service"
)

const maxSpinLogLimit = 1000

type WheelHandler struct {
	service wheelservice.WheelService
}

func NewWheelHandler(service wheelservice.WheelService) *WheelHandler {
	return &WheelHandler{service: service}
}

func (h *WheelHandler) RegisterRoutes(router *gin.RouterGroup) {
	wheels := router.Group("/wheelspin")
	{
		wheels.GET("", h.list)
		wheels.POST("", h.create)
		wheels.GET("/:id", h.getByID)
		wheels.PATCH("/:id", h.update)
		wheels.DELETE("/:id", h.delete)
		wheels.POST("/:id/spin", h.spin)
		wheels.GET("/:id/spins", h.getSpins)
	}
}

// @Summary List wheels
// @Description Returns all saved wheels, most recently updated first
// @Tags wheelspin
// @Produce json
// @Success 200 {object} dto.WheelListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /wheelspin [get]
func (h *WheelHandler) list(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create wheel
// @Description Creates a wheel with its entries. Entry ids are assigned by the server
// @Tags wheelspin
// @Accept json
// @Produce json
// @Param input body dto.WheelCreateRequest true "Wheel configuration"
// @Success 201 {object} dto.WheelResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /wheelspin [post]
func (h *WheelHandler) create(c *gin.Context) {
	var input dto.WheelCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get wheel
// @Description Returns the wheel header and its entries
// @Tags wheelspin
// @Produce json
// @Param id path string true "Wheel ID"
// @Success 200 {object} dto.WheelResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wheelspin/{id} [get]
func (h *WheelHandler) getByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update wheel
// @Description Partially updates a wheel. When entries are sent they replace the list; entries without id are added
// @Tags wheelspin
// @Accept json
// @Produce json
// @Param id path string true "Wheel ID"
// @Param input body dto.WheelUpdateRequest true "Fields to change"
// @Success 200 {object} dto.WheelResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wheelspin/{id} [patch]
func (h *WheelHandler) update(c *gin.Context) {
	var input dto.WheelUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete wheel
// @Tags wheelspin
// @Param id path string true "Wheel ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wheelspin/{id} [delete]
func (h *WheelHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Spin wheel
// @Description Draws one entry weighted by its weight, skipping exclude_entry_ids. Winner is null when nothing is eligible
// @Tags wheelspin
// @Accept json
// @Produce json
// @Param id path string true "Wheel ID"
// @Param input body dto.SpinRequest false "Entries to skip"
// @Success 200 {object} dto.SpinResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wheelspin/{id}/spin [post]
func (h *WheelHandler) spin(c *gin.Context) {
	var input dto.SpinRequest
	// пустое тело допустимо, в том числе chunked без Content-Length
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	winner, err := h.service.Spin(c.Request.Context(), c.Param("id"), input.ExcludeEntryIDs)
	if errors.Is(err, selector.ErrNoEligibleCandidates) {
		c.JSON(http.StatusOK, mapper.ToSpinResponse(nil))
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToSpinResponse(&winner))
}

// @Summary Spin log
// @Description Returns the latest server-side draws of a wheel, newest first
// @Tags wheelspin
// @Produce json
// @Param id path string true "Wheel ID"
// @Param limit query int false "Max records"
// @Success 200 {object} dto.SpinLogResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /wheelspin/{id}/spins [get]
func (h *WheelHandler) getSpins(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSpinLogLimit {
			_ = c.Error(apperrors.NewValidationError("limit", "must be an integer between 1 and 1000"))
			return
		}
		limit = n
	}

	resp, err := h.service.GetSpins(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
