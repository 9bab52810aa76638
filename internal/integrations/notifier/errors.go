package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrDelivery возвращается, когда сервис уведомлений не принял сообщение
	ErrDelivery = errors.New("notifier client: delivery failed")

	// ErrNilIntent возвращается при попытке отправить пустое уведомление
	ErrNilIntent = errors.New("notifier client: nil intent")
)
