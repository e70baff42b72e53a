package handler

import (
	"net/http"

	"concierge/internal/model"
	"concierge/internal/service"

	"github.com/gin-gonic/gin"
)

// InquiryHandler handles contact-form submissions
type InquiryHandler struct {
	catalog *service.Catalog
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(catalog *service.Catalog) *InquiryHandler {
	return &InquiryHandler{catalog: catalog}
}

// Submit handles POST /api/v1/inquiries
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req model.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.InquiryResponse{
			Success: false,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	if err := h.catalog.SubmitInquiry(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, model.InquiryResponse{
			Success: false,
			Message: "Failed to submit inquiry",
		})
		return
	}

	c.JSON(http.StatusOK, model.InquiryResponse{
		Success: true,
		Message: "Inquiry received. We will get back to you shortly.",
	})
}
