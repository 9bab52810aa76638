package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Client клиент для отправки уведомлений гостям через внешний сервис
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет уведомление о смене статуса бронирования
func (c *Client) Send(ctx context.Context, intent *domain.NotificationIntent) error {
	if intent == nil {
		return ErrNilIntent
	}

	body, err := json.Marshal(NewMessage(intent))
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", intent.ID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		c.log.Info("Notification sent: booking_id=%d, status=%s, intent_id=%s", intent.BookingID, intent.Status, intent.ID)
		return nil
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDelivery, resp.StatusCode, readErrorBody(resp.Body))
	}
}

// maxErrorBodySize сколько байт тела ошибки читается для диагностики
const maxErrorBodySize = 4 << 10

// readErrorBody читает не больше maxErrorBodySize байт ответа с ошибкой
// и достаёт message из ErrorResponse, если тело в этом формате
func readErrorBody(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodySize))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(bytes.TrimSpace(raw))
}

// LogDispatcher используется, когда внешний сервис уведомлений выключен:
// намерение только пишется в лог
type LogDispatcher struct {
	log Logger
}

// NewLogDispatcher создает диспетчер, который только логирует уведомления
func NewLogDispatcher(log Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

// Send логирует уведомление и никогда не возвращает ошибку для непустого намерения
func (d *LogDispatcher) Send(_ context.Context, intent *domain.NotificationIntent) error {
	if intent == nil {
		return ErrNilIntent
	}
	d.log.Info("Notification (log only): booking_id=%d, status=%s, email=%s, intent_id=%s",
		intent.BookingID, intent.Status, intent.GuestEmail, intent.ID)
	return nil
}
