package search_rooms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	searchRooms "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelReservations/internal/validation"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
)

type useCaseMock struct {
	criteria  domain.SearchCriteria
	executeFn func(ctx context.Context, criteria domain.SearchCriteria) (*searchRooms.Response, error)
}

func (m *useCaseMock) Execute(ctx context.Context, criteria domain.SearchCriteria) (*searchRooms.Response, error) {
	m.criteria = criteria
	return m.executeFn(ctx, criteria)
}

func TestToSearchCriteria(t *testing.T) {
	q, err := url.ParseQuery("q=suite&min_price=100&max_price=300.5&guests=2&facility=Wi-Fi&facility=Balcony&view=Garden+View&only_available=true")
	require.NoError(t, err)

	c, err := ToSearchCriteria(q)
	require.NoError(t, err)

	assert.Equal(t, "suite", c.Query)
	require.NotNil(t, c.MinPrice)
	assert.InDelta(t, 100.0, *c.MinPrice, 1e-9)
	require.NotNil(t, c.MaxPrice)
	assert.InDelta(t, 300.5, *c.MaxPrice, 1e-9)
	require.NotNil(t, c.Guests)
	assert.Equal(t, 2, *c.Guests)
	assert.Equal(t, []string{"Wi-Fi", "Balcony"}, c.Facilities)
	require.NotNil(t, c.ViewType)
	assert.Equal(t, "Garden View", *c.ViewType)
	assert.True(t, c.OnlyAvailable)
}

func TestToSearchCriteria_Empty(t *testing.T) {
	c, err := ToSearchCriteria(url.Values{})
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestToSearchCriteria_Malformed(t *testing.T) {
	q, _ := url.ParseQuery("min_price=cheap&guests=two&only_available=maybe")

	_, err := ToSearchCriteria(q)
	require.ErrorIs(t, err, validation.ErrValidation)

	errs, _ := validation.AsErrors(err)
	assert.True(t, errs.Has("min_price"))
	assert.True(t, errs.Has("guests"))
	assert.True(t, errs.Has("only_available"))
}

func TestHandle(t *testing.T) {
	uc := &useCaseMock{executeFn: func(ctx context.Context, criteria domain.SearchCriteria) (*searchRooms.Response, error) {
		return &searchRooms.Response{
			Rooms: []*domain.Room{
				{ID: 3, Title: "Garden Suite", NightlyRate: 350, Features: []string{"Garden View"}, IsAvailable: true},
			},
			Total:           1,
			CriteriaApplied: true,
		}, nil
	}}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/search?view=Garden+View", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body SearchRoomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.True(t, body.CriteriaApplied)
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "Garden Suite", body.Rooms[0].Title)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "malformed number", query: "?max_price=abc", wantStatus: http.StatusBadRequest},
		{name: "inconsistent range", query: "?min_price=300&max_price=100", err: searchRooms.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", query: "", err: searchRooms.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{executeFn: func(ctx context.Context, criteria domain.SearchCriteria) (*searchRooms.Response, error) {
				return nil, tt.err
			}}
			h := NewHandler(uc, logger.NewWithWriter(io.Discard, logger.LevelDebug))

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/search"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
