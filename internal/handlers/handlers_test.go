package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/01moynul/autoshop-golang/internal/auth"
	"github.com/01moynul/autoshop-golang/internal/database/databasetest"
	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/01moynul/autoshop-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	contacts []*models.ContactMessage
	bookings []*models.ServiceBooking
}

func (f *fakeNotifier) NotifyContactMessage(msg *models.ContactMessage) {
	f.contacts = append(f.contacts, msg)
}

func (f *fakeNotifier) NotifyServiceBooking(booking *models.ServiceBooking) {
	f.bookings = append(f.bookings, booking)
}

func newTestHandlers(t *testing.T) (*Handlers, *fakeNotifier) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &fakeNotifier{}
	h := &Handlers{
		Store:     store.New(databasetest.NewSQLite(t), logger),
		Notifier:  notifier,
		Tokens:    auth.NewIssuer("test-secret"),
		UploadDir: t.TempDir(),
		BaseURL:   "http://localhost:8080",
		Logger:    logger,
	}
	return h, notifier
}

// newTestRouter mounts the handlers without the admin guard.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthcheck", h.HealthCheck)
	r.GET("/promos", h.GetPromos)
	r.POST("/promos", h.CreatePromo)
	r.GET("/products", h.GetProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.GET("/articles", h.GetArticles)
	r.GET("/articles/:id", h.GetArticle)
	r.POST("/articles", h.CreateArticle)
	r.POST("/articles/:id/like", h.LikeArticle)
	r.GET("/articles/:id/comments", h.GetArticleComments)
	r.POST("/comments", h.CreateComment)
	r.POST("/contact-messages", h.CreateContactMessage)
	r.GET("/service-bookings", h.GetServiceBookings)
	r.POST("/service-bookings", h.CreateServiceBooking)
	r.POST("/admin/login", h.AdminLogin)
	r.GET("/admin/comments/pending", h.GetPendingComments)
	r.PATCH("/admin/comments/:id/approve", h.ApproveComment)
	r.GET("/admin/contact-messages", h.GetContactMessages)
	r.PATCH("/admin/contact-messages/:id/read", h.MarkContactMessageRead)
	r.PATCH("/admin/service-bookings/:id/status", h.UpdateServiceBookingStatus)
	r.POST("/admin/upload", h.UploadFile)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandlers(t)
	w := doJSON(t, newTestRouter(h), http.MethodGet, "/healthcheck", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	h, _ := newTestHandlers(t)
	require.NoError(t, h.Store.DB.Close())

	w := doJSON(t, newTestRouter(h), http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBindJSONMalformedBody(t *testing.T) {
	h, _ := newTestHandlers(t)
	w := doJSON(t, newTestRouter(h), http.MethodPost, "/promos", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestBindJSONReportsFieldNames(t *testing.T) {
	h, _ := newTestHandlers(t)
	w := doJSON(t, newTestRouter(h), http.MethodPost, "/contact-messages", gin.H{
		"name": "Ana", "email": "not-an-email", "subject": "Hi",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "must be a valid email address", resp.Fields["email"])
	assert.Equal(t, "is required", resp.Fields["message"])
}

func TestParseIDRejectsNonNumeric(t *testing.T) {
	h, _ := newTestHandlers(t)
	r := newTestRouter(h)

	for _, path := range []string{"/products/abc", "/products/0", "/articles/-1"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestHandlersWithoutLoggerUseDefault(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.Logger = nil
	require.NoError(t, h.Store.DB.Close())

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	w := doJSON(t, newTestRouter(h), http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, logs.String(), "healthcheck ping failed")
}

func TestAdminLoginWithoutLogger(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.Logger = nil
	h.AdminPassword.Hash = "not-a-bcrypt-hash"

	w := doJSON(t, newTestRouter(h), http.MethodPost, "/admin/login", gin.H{"password": "x"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
