package api

import (
	"errors"
	"net/http"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	cmds commands.UsageCommands
}

func NewUsageHandler(cmds commands.UsageCommands) *UsageHandler {
	return &UsageHandler{cmds: cmds}
}

func (h *UsageHandler) Attach(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "Unauthorized", nil)
		return
	}

	var req reqdto.AttachUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rec, err := h.cmds.Attach(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not permitted to record usage for this booking", nil)
		case errors.Is(err, commands.ErrBookingNotCompleted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not completed", nil)
		case errors.Is(err, commands.ErrUsageAlreadyRecorded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Usage record already exists for this booking", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUsageRecord(rec))
}
