package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playfield/services/facility"
	"playfield/utils"
)

// ListFacilitiesHandler returns approved facilities. Public, cache-backed.
func (h *HandlerBundle) ListFacilitiesHandler(c *gin.Context) {
	facilities, err := h.Facilities.ListPublic(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facilities", facilities)
}

// GetFacilityHandler returns one facility. Unapproved facilities are only
// visible to their owner and super-admins.
func (h *HandlerBundle) GetFacilityHandler(c *gin.Context) {
	actor := actorOptional(c)
	fac, err := h.Facilities.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facility", fac)
}

// ListMyFacilitiesHandler returns the facilities owned by the caller.
func (h *HandlerBundle) ListMyFacilitiesHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	facilities, err := h.Facilities.ListByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facilities", facilities)
}

// CreateFacilityHandler registers a new facility in pending status.
func (h *HandlerBundle) CreateFacilityHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req facility.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	fac, err := h.Facilities.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "facility created, pending approval", fac)
}

// UpdateFacilityHandler mutates editable facility fields.
func (h *HandlerBundle) UpdateFacilityHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req facility.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	fac, err := h.Facilities.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facility updated", fac)
}

// DeleteFacilityHandler removes a facility and cascades to its services and
// slots. Blocked while any slot still holds bookings.
func (h *HandlerBundle) DeleteFacilityHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	if err := h.Facilities.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facility deleted", nil)
}

// UploadFacilityImageHandler accepts a multipart image and stores it.
func (h *HandlerBundle) UploadFacilityImageHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read image file")
		return
	}
	defer file.Close()

	url, err := h.Facilities.UploadImage(c.Request.Context(), actor, c.Param("id"), file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "image uploaded", gin.H{"url": url})
}

// ListFacilityServicesHandler returns a facility's bookable services.
func (h *HandlerBundle) ListFacilityServicesHandler(c *gin.Context) {
	services, err := h.Facilities.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "services", services)
}

// CreateServiceHandler adds a bookable service to an owned facility.
func (h *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req facility.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	svc, err := h.Facilities.CreateService(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service created", svc)
}

// UpdateServiceHandler mutates editable service fields.
func (h *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req facility.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	svc, err := h.Facilities.UpdateService(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service updated", svc)
}

// DeleteServiceHandler removes a service and its slots; blocked while booked
// slots exist.
func (h *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	if err := h.Facilities.DeleteService(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service deleted", nil)
}
