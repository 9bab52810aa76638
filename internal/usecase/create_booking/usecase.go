package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
	"github.com/m04kA/SMC-HotelReservations/pkg/pricing"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
)

// UseCase use case для создания бронирования гостем
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Бронирование всегда создаётся в статусе pending
func (uc *UseCase) Execute(ctx context.Context, actor domain.Actor, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room_type=%q, check_in=%s, check_out=%s",
		actor.UserID, req.Booking.RoomType,
		req.Booking.CheckIn.Format(domain.DateFormat), req.Booking.CheckOut.Format(domain.DateFormat))

	if actor.UserID <= 0 {
		uc.logger.Warn("CreateBooking: missing user id")
		return nil, ErrAccessDenied
	}

	// 1. Структурная валидация (без обращения к хранилищу)
	bookingReq, err := validation.ValidateBookingRequest(req.Booking)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Считаем количество ночей
	nights := pricing.Nights(bookingReq.CheckIn, bookingReq.CheckOut)
	if nights <= 0 {
		uc.logger.Warn("CreateBooking: non-positive nights for check_in=%s, check_out=%s",
			bookingReq.CheckIn.Format(domain.DateFormat), bookingReq.CheckOut.Format(domain.DateFormat))
		return nil, validation.NewFieldError("check_out", validation.MsgCheckOutNotAfterCheckIn)
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking := &domain.Booking{
			UserID:          actor.UserID,
			GuestName:       bookingReq.GuestName,
			GuestEmail:      bookingReq.GuestEmail,
			GuestPhone:      bookingReq.GuestPhone,
			CheckIn:         bookingReq.CheckIn,
			CheckOut:        bookingReq.CheckOut,
			Guests:          bookingReq.Guests,
			RoomType:        bookingReq.RoomType,
			SpecialRequests: bookingReq.SpecialRequests,
			PaymentMethod:   bookingReq.PaymentMethod,
			Status:          domain.StatusPending,
			TotalNights:     nights,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		// 3. Ищем номер каталога для цены. room_type - свободный текст,
		// поэтому отсутствие номера не ошибка: бронирование останется без цены
		room, err := uc.roomRepo.GetByTitle(txCtx, bookingReq.RoomType)
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			uc.logger.Info("CreateBooking: room_type=%q not in catalog, booking stays unpriced", bookingReq.RoomType)
		case err != nil:
			uc.logger.Error("CreateBooking: failed to get room by title=%q: %v", bookingReq.RoomType, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		case !room.IsAvailable:
			uc.logger.Warn("CreateBooking: room id=%d is not available", room.ID)
			return ErrRoomNotAvailable
		default:
			booking.NightlyRate = ptr.Ptr(room.NightlyRate)
			booking.TotalPrice = ptr.Ptr(pricing.TotalPrice(nights, room.NightlyRate))
		}

		// 4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	priced := result.IsPriced()
	uc.metrics.RecordBookingCreated(priced)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, nights=%d, priced=%t", result.ID, nights, priced)

	return &Response{
		Booking: result,
		Priced:  priced,
	}, nil
}
