package history

import (
	"net/http"
	"strconv"

	"gymflow/internal/api"
	"gymflow/internal/identity"

	"github.com/gin-gonic/gin"
)

const defaultLimit = 50

type Handler struct {
	journal *Journal
}

func NewHandler(journal *Journal) *Handler {
	return &Handler{journal: journal}
}

// @Summary      Recent booking events
// @Description  Audit trail of bookings, cancellations and promotions.
// @Tags         history
// @Produce      json
// @Param        limit  query     int  false  "Max entries (default 50)"
// @Success      200    {array}   history.Entry
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	entries, err := h.journal.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary      My booking events
// @Tags         history
// @Produce      json
// @Param        X-User-ID  header    string  false  "Member id"
// @Param        limit      query     int     false  "Max entries (default 50)"
// @Success      200        {array}   history.Entry
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/events [get]
func (h *Handler) ListMyEvents(c *gin.Context) {
	userID, ok := identity.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing user id"})
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	entries, err := h.journal.ForUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}
