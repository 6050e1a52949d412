// File: handlers/occupancy.go
package handlers

import (
	"net/http"

	occupancyRepo "paguro/database/repository/occupancy"
	"paguro/utils"

	"github.com/gin-gonic/gin"
)

// OccupancyHandler exposes a read-only view of stored occupancy rows
// for operational debugging.
type OccupancyHandler struct {
	Repo occupancyRepo.Repository
}

func NewOccupancyHandler(repo occupancyRepo.Repository) *OccupancyHandler {
	return &OccupancyHandler{Repo: repo}
}

// ListOccupancyHandler serves GET /api/db/occupancy.
func (h *OccupancyHandler) ListOccupancyHandler(c *gin.Context) {
	records, err := h.Repo.ListAll(c.Request.Context(), 50)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list occupancy records", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"description": "Dates on which the apartments are OCCUPIED.",
		"count":       len(records),
		"data":        records,
	})
}
