package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playfield/utils"
)

// BookSlotHandler reserves units of a slot for the caller. The capacity
// check is atomic; concurrent requests can never oversell the slot.
func (h *HandlerBundle) BookSlotHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	booking, err := h.Bookings.Book(c.Request.Context(), actor.ID, c.Param("id"), req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "booking confirmed", booking)
}

// CancelSlotBookingHandler cancels the caller's confirmed booking on a slot.
func (h *HandlerBundle) CancelSlotBookingHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	booking, err := h.Bookings.CancelBySlot(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "booking cancelled", booking)
}

// CancelBookingHandler cancels a booking by its ID.
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	booking, err := h.Bookings.Cancel(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "booking cancelled", booking)
}

// ListMyBookingsHandler returns the caller's bookings, newest first.
func (h *HandlerBundle) ListMyBookingsHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	bookings, err := h.Bookings.ListForUser(c.Request.Context(), actor.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "bookings", bookings)
}

// CreatePaymentIntentHandler opens a Stripe payment intent for a booking and
// returns its client secret.
func (h *HandlerBundle) CreatePaymentIntentHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	clientSecret, err := h.Bookings.CreatePaymentIntent(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "payment intent created", gin.H{"clientSecret": clientSecret})
}
