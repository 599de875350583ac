package booking

import (
	"errors"
	"net/http"
	"strconv"

	"gymflow/internal/api"
	"gymflow/internal/identity"
	"gymflow/internal/ledger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List classes
// @Description  Weekly schedule with availability and waitlist length.
// @Tags         classes
// @Produce      json
// @Param        day  query     int  false  "Day index, 0 = Monday"
// @Success      200  {array}   booking.ClassView
// @Failure      400  {object}  api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	var day *int
	if raw := c.Query("day"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 || d > 6 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "day must be between 0 and 6"})
			return
		}
		day = &d
	}

	c.JSON(http.StatusOK, h.service.ListClasses(c.Request.Context(), day))
}

// @Summary      Get class
// @Description  One class with the caller's booking status.
// @Tags         classes
// @Produce      json
// @Param        X-User-ID  header    string  false  "Member id"
// @Param        classID    path      string  true   "Class ID"
// @Success      200        {object}  booking.ClassDetail
// @Failure      404        {object}  api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	userID, ok := identity.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing user id"})
		return
	}

	detail, err := h.service.GetClass(c.Request.Context(), userID, c.Param("classID"))
	if err != nil {
		if errors.Is(err, ledger.ErrClassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch class"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary      Book class
// @Description  Confirms a spot, or joins the waitlist when the class is full.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string               false  "Member id"
// @Param        classID    path      string               true   "Class ID"
// @Param        request    body      booking.BookRequest  false  "Display name"
// @Success      200        {object}  ledger.Result
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  ledger.Result
// @Failure      409        {object}  ledger.Result
// @Router       /classes/{classID}/book [post]
func (h *Handler) BookClass(c *gin.Context) {
	userID, ok := identity.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing user id"})
		return
	}

	var req BookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			if details := api.ValidationErrors(err); details != nil {
				c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Error: "validation failed", Details: details})
				return
			}
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
	}

	res := h.service.Book(c.Request.Context(), userID, c.Param("classID"), req.UserName)
	c.JSON(statusFor(res), res)
}

// @Summary      Cancel booking
// @Description  Cancels the caller's booking. A freed spot goes to the head of the waitlist.
// @Tags         bookings
// @Produce      json
// @Param        X-User-ID  header    string  false  "Member id"
// @Param        classID    path      string  true   "Class ID"
// @Success      200        {object}  ledger.Result
// @Failure      404        {object}  ledger.Result
// @Router       /classes/{classID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, ok := identity.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing user id"})
		return
	}

	res := h.service.Cancel(c.Request.Context(), userID, c.Param("classID"))
	c.JSON(statusFor(res), res)
}

// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Param        X-User-ID          header  string  false  "Member id"
// @Param        include_cancelled  query   bool    false  "Include cancelled bookings"
// @Success      200  {array}  booking.BookingView
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, ok := identity.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing user id"})
		return
	}

	ctx := c.Request.Context()
	if includeCancelled, _ := strconv.ParseBool(c.Query("include_cancelled")); includeCancelled {
		c.JSON(http.StatusOK, h.service.History(ctx, userID))
		return
	}

	c.JSON(http.StatusOK, h.service.UserBookings(ctx, userID))
}

func statusFor(res ledger.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch {
	case errors.Is(res.Err, ledger.ErrClassNotFound), errors.Is(res.Err, ledger.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(res.Err, ledger.ErrAlreadyBooked):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
