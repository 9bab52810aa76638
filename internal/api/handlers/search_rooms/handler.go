package search_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservations/internal/api/handlers"
	searchRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_rooms"
)

const (
	msgInvalidCriteria = "некорректные критерии поиска"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/search
// Без параметров возвращает весь каталог
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	criteria, err := ToSearchCriteria(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/search - Invalid query params: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), criteria)
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/search - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCriteria)

		default:
			h.logger.Error("GET /rooms/search - Failed to search rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/search - Search completed: found=%d, criteria_applied=%t",
		result.Total, result.CriteriaApplied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
