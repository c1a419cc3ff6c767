package handlers

import (
	"net/http"

	"backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// PackageHandler serves the read-only tour-package catalog.
type PackageHandler struct {
	Catalog *catalog.Catalog
}

// GET /api/packages?state=&category=&q=
func (h PackageHandler) List(c *gin.Context) {
	items := h.Catalog.Filter(c.Query("state"), c.Query("category"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"packages": items,
		"count":    len(items),
	})
}

// GET /api/packages/:id
func (h PackageHandler) Get(c *gin.Context) {
	pkg, err := h.Catalog.ByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}
