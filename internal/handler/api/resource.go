package api

import (
	"errors"
	"net/http"

	"facility-booking/internal/domain/resource"
	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	cmds commands.ResourceCommands
	q    queries.ResourceQueries
}

func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{cmds: cmds, q: q}
}

func (h *ResourceHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), created.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load resource", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResourceView(view))
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrResourceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

func (h *ResourceHandler) List(c *gin.Context) {
	var f queries.ResourceFilter
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if v := c.Query("status"); v != "" {
		status := resource.Status(v)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("unknown status"), "Invalid status filter", nil)
			return
		}
		f.Status = &status
	}
	if v := c.Query("search"); v != "" {
		f.Search = &v
	}

	views, err := h.q.List(c.Request.Context(), f)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resdto.FromResourceViews(views)})
}

func (h *ResourceHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	var req reqdto.UpdateResourceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource status", nil)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), id, patch, actor)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), updated.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load resource", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing auth context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		if errors.Is(err, commands.ErrResourceHasActiveBookings) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource has pending or approved bookings", nil)
			return
		}
		h.abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
