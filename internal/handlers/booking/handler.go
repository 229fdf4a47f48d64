package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"riverstay/infras/otel"
	"riverstay/internal/domains/booking/model/dto"
	"riverstay/internal/domains/booking/service"
	"riverstay/shared/constant"
	gDto "riverstay/shared/dto"
	"riverstay/shared/validator"
	"riverstay/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book-room", handler.BookRoom)
	router.Get("/my-booked-rooms", handler.GetMyBookedRooms)
}

// BookRoom books a room for the authenticated user.
// @Summary Book a room
// @Description Book a room for the current user. Each user can book a given room once.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Book Room Request"
// @Success 201 {object} response.Message "Room booked successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/book-room [post]
// @Security BearerAuth
func (handler *Handler) BookRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room booked successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room booked successfully")
}

// GetMyBookedRooms retrieves the rooms booked by the authenticated user.
// @Summary Get my booked rooms
// @Description Retrieve the current user's bookings together with the room details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookedRoomsResponse] "List of booked rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/my-booked-rooms [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookedRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booked rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booked rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
