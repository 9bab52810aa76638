package metrics

import "strconv"

// Методы ниже безопасны для nil получателя: при выключенных метриках
// в use case передаётся nil *Metrics

// RecordBookingCreated учитывает созданное бронирование
func (m *Metrics) RecordBookingCreated(priced bool) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(strconv.FormatBool(priced)).Inc()
}

// RecordTransition учитывает смену статуса бронирования
func (m *Metrics) RecordTransition(status string, changed bool) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(status, strconv.FormatBool(changed)).Inc()
}

// RecordNotification учитывает попытку доставки уведомления
func (m *Metrics) RecordNotification(delivered bool) {
	if m == nil {
		return
	}
	result := "delivered"
	if !delivered {
		result = "failed"
	}
	m.NotificationDeliveries.WithLabelValues(result).Inc()
}

// RecordSearch учитывает размер выдачи поиска номеров
func (m *Metrics) RecordSearch(results int, criteriaApplied bool) {
	if m == nil {
		return
	}
	m.RoomSearches.WithLabelValues(strconv.FormatBool(criteriaApplied)).Observe(float64(results))
}
