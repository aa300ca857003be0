package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"playfield/models"
	"playfield/services/timeslot"
	"playfield/utils"
)

// parseSlotFilter reads the listing filters from query parameters.
func parseSlotFilter(c *gin.Context) models.SlotFilter {
	filter := models.SlotFilter{
		FacilityID: c.Query("facilityId"),
		ServiceID:  c.Query("serviceId"),
		Date:       c.Query("date"),
		DateFrom:   c.Query("dateFrom"),
		DateTo:     c.Query("dateTo"),
		SortDesc:   c.Query("sort") == "desc",
	}
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}
	if v := c.Query("isBooked"); v != "" {
		booked := v == "true"
		filter.IsBooked = &booked
	}
	if v, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil {
		filter.Page = v
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		filter.Limit = v
	}
	return filter
}

// ListSlotsHandler lists slots with filters, pagination and derived status.
func (h *HandlerBundle) ListSlotsHandler(c *gin.Context) {
	slots, total, err := h.Slots.List(c.Request.Context(), parseSlotFilter(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "timeslots", gin.H{"items": slots, "total": total})
}

// GetSlotHandler returns one slot with its derived status.
func (h *HandlerBundle) GetSlotHandler(c *gin.Context) {
	slot, err := h.Slots.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "timeslot", slot)
}

// CreateSlotHandler creates a single slot on an owned facility.
func (h *HandlerBundle) CreateSlotHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req timeslot.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	slot, err := h.Slots.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "timeslot created", slot)
}

// CreateSlotsBulkHandler creates many slots at once; per-item failures are
// reported without aborting the batch.
func (h *HandlerBundle) CreateSlotsBulkHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req models.BulkSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	result, err := h.Slots.CreateBulk(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "timeslots created", result)
}

// UpdateSlotHandler mutates editable slot fields.
func (h *HandlerBundle) UpdateSlotHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req timeslot.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	slot, err := h.Slots.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "timeslot updated", slot)
}

// DeleteSlotHandler removes a slot. A slot holding bookings is refused
// unless ?force=true, which only a super-admin may use.
func (h *HandlerBundle) DeleteSlotHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	force := c.Query("force") == "true"
	if err := h.Slots.Delete(c.Request.Context(), actor, c.Param("id"), force); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "timeslot deleted", nil)
}
