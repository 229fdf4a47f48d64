package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"riverstay/config"
	"riverstay/infras/kafka"
	"riverstay/infras/otel"
	"riverstay/internal/domains/booking/model"
	"riverstay/internal/domains/booking/model/dto"
	"riverstay/internal/domains/booking/repository"
	roomDto "riverstay/internal/domains/room/model/dto"
	roomModel "riverstay/internal/domains/room/model"
	roomRepo "riverstay/internal/domains/room/repository"
	userModel "riverstay/internal/domains/user/model"
	userRepo "riverstay/internal/domains/user/repository"
	"riverstay/shared"
	"riverstay/shared/cache"
	"riverstay/shared/constant"
	gDto "riverstay/shared/dto"
	"riverstay/shared/failure"
	gRepo "riverstay/shared/repository"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookedRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Booking, roomRepo roomRepo.Room, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafkaClient kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafkaClient,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	alreadyBooked, err := s.repo.Exist(ctx, bookingFilter(userID, req.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing booking")

		return fmt.Errorf("failed to check existing booking: %w", err)
	}

	if alreadyBooked {
		return failure.Conflict("room already booked") // nolint:wrapcheck
	}

	booking := req.ToModel(userID, user.Name, room.Name)

	if err = s.repo.Insert(ctx, booking); err != nil {
		// A concurrent booking may slip past the exist check; the unique
		// constraint on (user_id, room_id) is the final arbiter.
		if errors.Is(err, gRepo.ErrUniqueViolation) {
			return failure.Conflict("room already booked") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingCreatedEvent{
			BookingID: booking.ID,
			RoomID:    booking.RoomID,
			RoomName:  booking.RoomName,
			UserID:    booking.UserID,
			BookedBy:  booking.BookedBy,
			BookedAt:  booking.BookedAt,
		}

		message := kafka.Message{Key: booking.ID, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, message); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookedRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booked rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	rooms, err := s.currentRooms(ctx, bookings)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings, rooms, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booked rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// currentRooms resolves the live catalog entry for each booked room.
func (s *serviceImpl) currentRooms(ctx context.Context, bookings []model.Booking) (map[string]roomDto.RoomResponse, error) {
	rooms := map[string]roomDto.RoomResponse{}
	if len(bookings) == 0 {
		return rooms, nil
	}

	roomIDs := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		roomIDs = append(roomIDs, booking.RoomID)
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    roomIDs,
				Table:    roomModel.TableName,
			},
		},
	}

	models, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked rooms")

		return rooms, fmt.Errorf("failed to get booked rooms: %w", err)
	}

	for _, mod := range models {
		var roomResponse roomDto.RoomResponse
		roomResponse.FromModel(mod)
		rooms[mod.ID] = roomResponse
	}

	return rooms, nil
}

func bookingFilter(userID, roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
		},
	}
}
