package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/otel"
	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	"atrium/internal/domains/booking/repository"
	roomModel "atrium/internal/domains/room/model"
	roomRepo "atrium/internal/domains/room/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/keylock"
	"atrium/shared/timeslot"
	"atrium/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheGetSlots      = "booking:slots"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	AvailableSlots(ctx context.Context, roomID, date string) (dto.GetSlotsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	events   kafka.Client
	locks    *keylock.KeyLock
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, events kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		events:   events,
		locks:    keylock.New(),
	}
}

// Create validates a booking request, rejects it when the requested interval
// overlaps an existing pending or confirmed booking for the same room and
// date, and persists it as pending. The conflict check and the insert run
// under a per room+date lock so that concurrent requests cannot both pass the
// check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.ContextGuest
	}

	interval, err := req.Interval()
	if err != nil {
		return res, err
	}

	room, err := s.activeRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if req.Attendees > room.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("attendees exceed room capacity of %d", room.Capacity)) // nolint:wrapcheck
	}

	booking, err := req.ToModel(user, room.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	lockKey := keylock.Key(booking.RoomID, booking.BookingDate.Format(timeslot.DateLayout))
	s.locks.Lock(lockKey)
	defer s.locks.Unlock(lockKey)

	if err = s.checkConflict(ctx, booking.RoomID, booking.BookingDate, interval, ""); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterMutation(ctx, booking, eventBookingCreated)

	res.FromModel(booking)

	return res, nil
}

// checkConflict reports the first pending or confirmed booking for the room
// and date whose interval overlaps the candidate. excludeID leaves out one
// booking when re-validating an edit.
func (s *serviceImpl) checkConflict(ctx context.Context, roomID string, date time.Time, candidate timeslot.Interval, excludeID string) error {
	existing, err := s.repo.FindActive(ctx, roomID, date, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for conflict check")

		return fmt.Errorf("failed to load bookings for conflict check: %w", err)
	}

	for _, other := range existing {
		occupied, err := other.Interval()
		if err != nil {
			log.Error().Err(err).Str("booking_id", other.ID).Msg("stored booking has an unusable interval")

			continue
		}

		if candidate.Overlaps(occupied) {
			return failure.Conflict(fmt.Sprintf("time slot conflicts with booking %s (%s)", other.ID, occupied)) // nolint:wrapcheck
		}
	}

	return nil
}

// Confirm moves a pending booking to confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.EventConfirm)
}

// Cancel moves a pending or confirmed booking to cancelled. Cancelled
// bookings are immutable, so cancelling twice fails.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.EventCancel)
}

// transition applies a lifecycle event under a per booking lock so that the
// status it validates is still the stored status when the update lands.
// Without the lock a cancel committing between another request's read and
// write could be overwritten.
func (s *serviceImpl) transition(ctx context.Context, id string, event model.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	lockKey := keylock.Key(model.TableName, id)
	s.locks.Lock(lockKey)
	defer s.locks.Unlock(lockKey)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	next, err := model.Transition(booking.Status, event)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next
	s.afterMutation(ctx, booking, eventNameForTransition(event))

	return nil
}

// AvailableSlots subtracts the room's busy intervals from the facility slot
// grid. A slot is unavailable when it overlaps any busy interval, not only
// when fully contained, so sub-hour bookings block every slot they touch.
func (s *serviceImpl) AvailableSlots(ctx context.Context, roomID, date string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingDate, err := time.Parse(timeslot.DateLayout, date)
	if err != nil {
		return res, failure.BadRequestFromString("booking_date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if _, err = s.activeRoom(ctx, roomID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetSlots, roomID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for slots")

		return res, nil
	}

	busy, err := s.repo.FindActive(ctx, roomID, bookingDate, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability")

		return res, fmt.Errorf("failed to load bookings for availability: %w", err)
	}

	grid := timeslot.NewGrid(
		s.cfg.App.SlotGrid.StartHour,
		s.cfg.App.SlotGrid.EndHour,
		s.cfg.App.SlotGrid.SlotMinutes,
	)

	free := []timeslot.Interval{}
	for _, slot := range grid.Slots() {
		if !s.slotBlocked(slot, busy) {
			free = append(free, slot)
		}
	}

	res.FromIntervals(roomID, date, free)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) slotBlocked(slot timeslot.Interval, busy []model.Booking) bool {
	for _, booking := range busy {
		occupied, err := booking.Interval()
		if err != nil {
			continue
		}

		if slot.Overlaps(occupied) {
			return true
		}
	}

	return false
}

func (s *serviceImpl) activeRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
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

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// afterMutation invalidates the read caches and publishes a lifecycle event.
// Both run off the request path; failures are logged, never surfaced.
func (s *serviceImpl) afterMutation(ctx context.Context, booking model.Booking, event string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetSlots, booking.RoomID))

		s.publishEvent(c, booking, event)
	}()
}
