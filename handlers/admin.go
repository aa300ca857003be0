package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playfield/models"
	"playfield/utils"
)

// ListPendingFacilitiesHandler returns facilities awaiting approval.
func (h *HandlerBundle) ListPendingFacilitiesHandler(c *gin.Context) {
	status := c.DefaultQuery("status", models.FacilityStatusPending)
	facilities, err := h.Facilities.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facilities", facilities)
}

// ApproveFacilityHandler marks a pending facility approved and publishes it.
func (h *HandlerBundle) ApproveFacilityHandler(c *gin.Context) {
	fac, err := h.Facilities.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facility approved", fac)
}

// RejectFacilityHandler rejects a pending facility with a reason.
func (h *HandlerBundle) RejectFacilityHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "reason is required")
		return
	}

	fac, err := h.Facilities.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facility rejected", fac)
}

// SuspendFacilityHandler takes an approved facility off the public listing.
func (h *HandlerBundle) SuspendFacilityHandler(c *gin.Context) {
	fac, err := h.Facilities.Suspend(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "facility suspended", fac)
}

// ListAccountsHandler lists all accounts, sensitive fields excluded.
func (h *HandlerBundle) ListAccountsHandler(c *gin.Context) {
	accounts, err := h.Accounts.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "accounts", accounts)
}
