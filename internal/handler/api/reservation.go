package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errMissingSearchParams = errs.New("customerName and roomNumber query parameters are required")
	errReservationNotFound = errs.New("reservation not found")
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Reserve a room for a date. A well-formed request that cannot be scheduled
// @Description (past date, beyond the booking horizon, slot already taken) is declined with 409.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.AddReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} resdto.AddReservationResponse
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithInputError(c, err)
		return
	}

	result, err := h.cmds.Add(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithInputError(c, err)
		return
	}

	if !result.Accepted() {
		c.JSON(http.StatusConflict, resdto.FromAddResult(result))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAddResult(result))
}

// @Summary Cancel reservation
// @Description Remove the reservation matching every supplied field
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CancelReservationRequest true "Cancel request"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithInputError(c, err)
		return
	}

	cancelled, err := h.cmds.Cancel(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelReservationResponse{Cancelled: cancelled})
}

// @Summary List reservations
// @Description All reservations in insertion order
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	items := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromReservationView(v)
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Find reservation
// @Description First reservation held by the customer in the room
// @Tags reservations
// @Produce json
// @Param customerName query string true "Customer name"
// @Param roomNumber query int true "Room number"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/search [get]
func (h *ReservationHandler) Search(c *gin.Context) {
	name := c.Query("customerName")
	roomStr := strings.TrimSpace(c.Query("roomNumber"))
	if name == "" || roomStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSearchParams, "customerName and roomNumber are required", nil)
		return
	}
	room, err := strconv.Atoi(roomStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid roomNumber", nil)
		return
	}

	view, ok, err := h.q.Find(c.Request.Context(), name, room)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errReservationNotFound, "Reservation not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
