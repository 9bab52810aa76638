package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
)

// UseCase use case смены статуса бронирования (сотрудником или отмены гостем)
type UseCase struct {
	bookingRepo  BookingRepository
	dispatcher   Dispatcher
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	dispatcher Dispatcher,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		dispatcher:   dispatcher,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute меняет статус бронирования
//
// Чтение и запись выполняются в одной транзакции: строка блокируется (FOR UPDATE),
// поэтому второй из двух параллельных переходов в один и тот же статус видит
// уже изменённый статус и уведомление не дублирует.
// Уведомление отправляется после фиксации; ошибка доставки только логируется.
func (uc *UseCase) Execute(ctx context.Context, actor domain.Actor, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%d, status=%s, by user=%d", req.BookingID, req.Status, actor.UserID)

	// 1. Менять статус может только сотрудник
	if !actor.IsStaff() {
		uc.logger.Warn("TransitionBooking: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидация входных данных
	status, notes, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	return uc.transition(ctx, req.BookingID, status, notes, func(*domain.Booking) error { return nil })
}

// CancelByGuest отменяет бронирование по запросу гостя
// Разрешено только владельцу и только пока бронирование в статусе pending.
// Гость получает такое же уведомление, как при отмене сотрудником
func (uc *UseCase) CancelByGuest(ctx context.Context, actor domain.Actor, bookingID int64) (*Response, error) {
	uc.logger.Info("CancelByGuest: booking=%d, by user=%d", bookingID, actor.UserID)

	if bookingID <= 0 {
		return nil, validation.NewFieldError("booking_id", msgInvalidBookingID)
	}

	return uc.transition(ctx, bookingID, domain.StatusCancelled, nil, func(b *domain.Booking) error {
		if !b.IsOwnedBy(actor.UserID) {
			uc.logger.Warn("CancelByGuest: access denied for user=%d to booking id=%d", actor.UserID, b.ID)
			return ErrAccessDenied
		}
		if !b.IsPending() {
			uc.logger.Warn("CancelByGuest: booking id=%d cannot be cancelled, status=%s", b.ID, b.Status)
			return ErrCannotCancel
		}
		return nil
	})
}

// transition выполняет переход под блокировкой строки
// authorize вызывается для заблокированной строки до изменения статуса
func (uc *UseCase) transition(
	ctx context.Context,
	bookingID int64,
	status domain.BookingStatus,
	notes *string,
	authorize func(b *domain.Booking) error,
) (*Response, error) {
	var (
		updated *domain.Booking
		intent  *domain.NotificationIntent
		changed bool
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if err := authorize(booking); err != nil {
			return err
		}

		changed = booking.Status != status
		updated, intent = domain.ApplyTransition(booking, status, notes, uc.timeProvider.Now())

		if err := uc.bookingRepo.UpdateStatus(txCtx, updated.ID, updated.Status, notes, updated.UpdatedAt); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to update booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordTransition(status.String(), changed)
	uc.logger.Info("TransitionBooking: booking id=%d is now %s (changed=%t)", updated.ID, updated.Status, changed)

	resp := &Response{
		Booking:      updated,
		Notification: intent,
	}

	// Уведомление после фиксации транзакции
	if intent != nil {
		resp.Delivered = uc.dispatch(ctx, intent)
	}

	return resp, nil
}

// dispatch отправляет уведомление; статус уже сохранён и не откатывается
func (uc *UseCase) dispatch(ctx context.Context, intent *domain.NotificationIntent) bool {
	if err := uc.dispatcher.Send(ctx, intent); err != nil {
		uc.logger.Error("TransitionBooking: notification for booking id=%d not delivered: %v", intent.BookingID, err)
		uc.metrics.RecordNotification(false)
		return false
	}

	uc.metrics.RecordNotification(true)
	return true
}
