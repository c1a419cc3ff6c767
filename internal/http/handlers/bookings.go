package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/catalog"
	"backend/internal/domain"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingAdminHandler exposes the booking store to staff. All routes sit
// behind RequireAuth + RequireRoles in the router.
type BookingAdminHandler struct {
	Repo    repositories.BookingRepository
	Catalog *catalog.Catalog
}

// GET /api/bookings?limit=
func (h BookingAdminHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	records, err := h.Repo.List(limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": records,
		"count":    len(records),
	})
}

// GET /api/bookings/:id
func (h BookingAdminHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	rec, err := h.Repo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "booking not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load booking", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /api/bookings/:id/invoice
func (h BookingAdminHandler) Invoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	svc := services.DocsService{
		BookingRepo: h.Repo,
		Catalog:     h.Catalog,
		RequestID:   middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "booking not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to generate invoice", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
