package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kaamkarwalo/booking-api/internal/models"
	"github.com/kaamkarwalo/booking-api/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repositories so handler behavior can be exercised without a
// running MongoDB. The user fake enforces the same phone uniqueness the real
// unique index does.

type memUserRepo struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memUserRepo) Insert(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Phone == phone {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
}

func (m *memBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *memBookingRepo) FindAll(ctx context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

type memDeliveryRepo struct {
	mu      sync.Mutex
	records []models.DeliveryRecord
}

func (m *memDeliveryRepo) Insert(ctx context.Context, rec *models.DeliveryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *memDeliveryRepo) FindByBooking(ctx context.Context, bookingID primitive.ObjectID) ([]models.DeliveryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DeliveryRecord
	for _, rec := range m.records {
		if rec.BookingID == bookingID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type captureAlerter struct {
	mu       sync.Mutex
	enqueued []models.Booking
}

func (c *captureAlerter) Enqueue(booking models.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enqueued = append(c.enqueued, booking)
}

func (c *captureAlerter) all() []models.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Booking(nil), c.enqueued...)
}

type testEnv struct {
	router     *gin.Engine
	users      *memUserRepo
	bookings   *memBookingRepo
	deliveries *memDeliveryRepo
	alerts     *captureAlerter
}

func newTestEnv() *testEnv {
	users := &memUserRepo{}
	bookings := &memBookingRepo{}
	deliveries := &memDeliveryRepo{}
	alerts := &captureAlerter{}
	h := NewHandler(users, bookings, deliveries, alerts)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/register", h.RegisterUser)
		api.POST("/login", h.Login)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.GetBookings)
		api.GET("/bookings/:id/deliveries", h.GetBookingDeliveries)
		api.GET("/users", h.GetUsers)
		api.GET("/users/:id", h.GetUser)
	}
	r.GET("/debug-all-users", h.DebugAllUsers)

	return &testEnv{router: r, users: users, bookings: bookings, deliveries: deliveries, alerts: alerts}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
