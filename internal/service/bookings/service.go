package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservations/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
	"github.com/m04kA/SMC-HotelReservations/pkg/pricing"
	"github.com/m04kA/SMC-HotelReservations/pkg/ptr"
)

// Service сервис для чтения бронирований и их изменения гостем
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	taxRate      float64
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	taxRate float64,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		taxRate:      taxRate,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование может его владелец или сотрудник
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getVisible(ctx, "GetByID", id, actor)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований гостя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, actor domain.Actor, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if !actor.IsStaff() && actor.UserID != req.UserID {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d", actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{UserID: &req.UserID}
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает бронирования всех гостей с фильтрацией
// Доступно только сотрудникам
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings by user=%d, status=%v, from=%v, to=%v",
		actor.UserID, req.Status, req.FromDate, req.ToDate)

	if !actor.IsStaff() {
		s.logger.Warn("List: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateByGuest применяет изменения гостя к его бронированию
// Разрешено только владельцу и только в статусе pending.
// Заявка валидируется заново, цена пересчитывается по каталогу
func (s *Service) UpdateByGuest(ctx context.Context, id int64, actor domain.Actor, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateByGuest: updating booking id=%d by user=%d", id, actor.UserID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Строка блокируется до конца транзакции: параллельная смена статуса дождётся нас
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateByGuest: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateByGuest: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateByGuest - repository error: %v", ErrInternal, err)
		}

		if !booking.IsOwnedBy(actor.UserID) {
			s.logger.Warn("UpdateByGuest: access denied for user=%d to booking id=%d", actor.UserID, id)
			return ErrAccessDenied
		}

		if !booking.CanBeEditedByGuest() {
			s.logger.Warn("UpdateByGuest: booking id=%d cannot be updated, status=%s", id, booking.Status)
			return ErrCannotUpdate
		}

		patched, err := applyPatch(booking.ToRequest(), req)
		if err != nil {
			return err
		}

		bookingReq, err := validation.ValidateBookingRequest(patched)
		if err != nil {
			s.logger.Warn("UpdateByGuest: validation failed for booking id=%d: %v", id, err)
			return err
		}

		updated := *booking
		updated.GuestName = bookingReq.GuestName
		updated.GuestEmail = bookingReq.GuestEmail
		updated.GuestPhone = bookingReq.GuestPhone
		updated.CheckIn = bookingReq.CheckIn
		updated.CheckOut = bookingReq.CheckOut
		updated.Guests = bookingReq.Guests
		updated.RoomType = bookingReq.RoomType
		updated.SpecialRequests = bookingReq.SpecialRequests
		updated.PaymentMethod = bookingReq.PaymentMethod
		updated.TotalNights = pricing.Nights(bookingReq.CheckIn, bookingReq.CheckOut)
		updated.UpdatedAt = s.timeProvider.Now()

		roomChanged := !strings.EqualFold(booking.RoomType, updated.RoomType)
		if err := s.reprice(txCtx, &updated, roomChanged); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateDetails(txCtx, &updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateByGuest: failed to save booking id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateByGuest - repository error: %v", ErrInternal, err)
		}

		result = &updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateByGuest: successfully updated booking id=%d", id)
	return models.FromDomainBooking(result), nil
}

// GetInvoice формирует счёт: стоимость проживания плюс налог отдельной строкой
func (s *Service) GetInvoice(ctx context.Context, id int64, actor domain.Actor) (*models.InvoiceResponse, error) {
	s.logger.Info("GetInvoice: building invoice for booking id=%d by user=%d", id, actor.UserID)

	booking, err := s.getVisible(ctx, "GetInvoice", id, actor)
	if err != nil {
		return nil, err
	}

	if !booking.IsPriced() {
		s.logger.Warn("GetInvoice: booking id=%d has no price", id)
		return nil, ErrNotPriced
	}

	invoice := pricing.BuildInvoice(booking.TotalNights, *booking.NightlyRate, s.taxRate)

	s.logger.Info("GetInvoice: booking id=%d total=%.2f", id, invoice.Total)
	return models.FromInvoice(booking, invoice), nil
}

// getVisible загружает бронирование и проверяет право на просмотр
func (s *Service) getVisible(ctx context.Context, op string, id int64, actor domain.Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !actor.CanView(booking) {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// reprice пересчитывает цену по текущему тарифу номера из каталога
// Снятый с бронирования номер запрещено выбирать, но уже выбранный остаётся
func (s *Service) reprice(ctx context.Context, b *domain.Booking, roomChanged bool) error {
	room, err := s.roomRepo.GetByTitle(ctx, b.RoomType)
	switch {
	case errors.Is(err, roomRepo.ErrRoomNotFound):
		b.NightlyRate = nil
		b.TotalPrice = nil
		return nil
	case err != nil:
		s.logger.Error("UpdateByGuest: failed to get room by title=%q: %v", b.RoomType, err)
		return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	case roomChanged && !room.IsAvailable:
		s.logger.Warn("UpdateByGuest: room id=%d is not available", room.ID)
		return ErrRoomNotAvailable
	}

	b.NightlyRate = ptr.Ptr(room.NightlyRate)
	b.TotalPrice = ptr.Ptr(pricing.TotalPrice(b.TotalNights, room.NightlyRate))
	return nil
}

// applyPatch накладывает непустые поля запроса на текущие данные бронирования
func applyPatch(current domain.BookingRequest, req *models.UpdateBookingRequest) (domain.BookingRequest, error) {
	if req.GuestName != nil {
		current.GuestName = *req.GuestName
	}
	if req.GuestEmail != nil {
		current.GuestEmail = *req.GuestEmail
	}
	if req.GuestPhone != nil {
		current.GuestPhone = *req.GuestPhone
	}
	if req.Guests != nil {
		current.Guests = *req.Guests
	}
	if req.RoomType != nil {
		current.RoomType = *req.RoomType
	}
	if req.SpecialRequests != nil {
		current.SpecialRequests = req.SpecialRequests
	}

	var errs validation.Errors

	if req.CheckIn != nil {
		d, err := time.Parse(domain.DateFormat, strings.TrimSpace(*req.CheckIn))
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "check_in", Message: "ожидается дата YYYY-MM-DD"})
		} else {
			current.CheckIn = d
		}
	}
	if req.CheckOut != nil {
		d, err := time.Parse(domain.DateFormat, strings.TrimSpace(*req.CheckOut))
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "check_out", Message: "ожидается дата YYYY-MM-DD"})
		} else {
			current.CheckOut = d
		}
	}
	if req.PaymentMethod != nil {
		if *req.PaymentMethod == "" {
			current.PaymentMethod = nil
		} else {
			current.PaymentMethod = ptr.Ptr(domain.PaymentMethod(*req.PaymentMethod))
		}
	}

	if len(errs) > 0 {
		return current, errs
	}
	return current, nil
}
