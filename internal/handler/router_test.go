//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/usecase/queries"
	"facility-booking/tests/common/httptest"
	commandsmock "facility-booking/tests/mock/commands"
	queriesmock "facility-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine        *gin.Engine
	tokens        *jwt.Service
	bookingQ      *queriesmock.MockBookingQueries
	availabilityQ *queriesmock.MockAvailabilityQueries
	slotQ         *queriesmock.MockSlotQueries
	resourceQ     *queriesmock.MockResourceQueries
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	bookingQ := queriesmock.NewMockBookingQueries(ctrl)
	availabilityQ := queriesmock.NewMockAvailabilityQueries(ctrl)
	slotQ := queriesmock.NewMockSlotQueries(ctrl)
	resourceQ := queriesmock.NewMockResourceQueries(ctrl)

	h := handler.Handlers{
		Booking:      api.NewBookingHandler(commandsmock.NewMockBookingCommands(ctrl), bookingQ),
		Resource:     api.NewResourceHandler(commandsmock.NewMockResourceCommands(ctrl), resourceQ),
		Availability: api.NewAvailabilityHandler(availabilityQ),
		Slot:         api.NewSlotHandler(slotQ),
		Usage:        api.NewUsageHandler(commandsmock.NewMockUsageCommands(ctrl)),
	}

	tokens := jwt.NewService("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(), logger, h, middleware.NewAuthMiddleware(tokens))

	return &routerFixture{
		engine:        engine,
		tokens:        tokens,
		bookingQ:      bookingQ,
		availabilityQ: availabilityQ,
		slotQ:         slotQ,
		resourceQ:     resourceQ,
	}
}

func TestPublicRoutes(t *testing.T) {
	t.Run("availability grid needs no token", func(t *testing.T) {
		f := newRouterFixture(t)
		resourceID := uuid.New()

		f.availabilityQ.EXPECT().ListForDate(gomock.Any(), resourceID, gomock.Any()).
			Return([]*queries.SlotAvailability{}, nil).Times(1)

		url := "/api/bookings/availability/" + resourceID.String() + "/2026-09-14"
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, url, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("slot catalog needs no token", func(t *testing.T) {
		f := newRouterFixture(t)

		f.slotQ.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/slots", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("resource catalog needs no token", func(t *testing.T) {
		f := newRouterFixture(t)

		f.resourceQ.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/resources", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health check", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/health", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthGatedRoutes(t *testing.T) {
	t.Run("booking listing rejects missing token", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("booking listing accepts a valid token", func(t *testing.T) {
		f := newRouterFixture(t)

		token, err := f.tokens.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		f.bookingQ.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/bookings", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("resource creation rejects missing token", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/resources",
			map[string]any{"name": "Auditorium"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("usage records reject missing token", func(t *testing.T) {
		f := newRouterFixture(t)
		rec := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/usage-records",
			map[string]any{"booking_id": uuid.New().String(), "remarks": "ok"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
