package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrack/config"
	deliverymiddleware "bookrack/internal/delivery/http/middleware"
	"bookrack/internal/delivery/http/router"
	"bookrack/internal/delivery/http/router/handler"
	"bookrack/internal/delivery/http/session"
	"bookrack/internal/delivery/http/validator"
	"bookrack/internal/infra/auth"
	"bookrack/internal/infra/persistence/memory"
	"bookrack/internal/usecase/impl"
)

// testApp wires the full HTTP surface against in-memory stores and a fake
// clock, mirroring the composition root without fx.
type testApp struct {
	echo  *echo.Echo
	clock *clockwork.FakeClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Session.Secret = "test_session_secret_key_for_testing"

	clock := clockwork.NewFakeClock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTServiceWithClock(cfg, clock)
	require.NoError(t, err)

	accountRepo := memory.NewAccountRepository()
	catalog := memory.NewCatalog()
	sessions := session.NewStore(cfg)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		AccountRepo:  accountRepo,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		Catalog: catalog,
		Logger:  logger,
	})
	reviewUC := impl.NewReviewService(impl.ReviewServiceParams{
		Catalog: catalog,
		Logger:  logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, sessions, logger),
		CatalogHandler: handler.NewCatalogHandler(catalogUC),
		ReviewHandler:  handler.NewReviewHandler(reviewUC, logger),
		AuthMiddleware: deliverymiddleware.NewAuthMiddleware(sessions, tokenSvc),
	})
	r.RegisterRoutes(e)

	return &testApp{echo: e, clock: clock}
}

// do issues a request, carrying any cookies previously captured into the
// session cookie jar.
func (app *testApp) do(method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	return rec
}

func TestRegisterLoginReviewLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Register alice.
	rec := app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Registering the same username again conflicts.
	rec = app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw2"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login and capture the session cookie.
	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "accessToken")
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// First upsert creates.
	rec = app.do(http.MethodPut, "/customer/auth/review/1", `{"review":"great"}`, cookies)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Second upsert modifies.
	rec = app.do(http.MethodPut, "/customer/auth/review/1", `{"review":"even better"}`, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The public read shows exactly the latest review.
	rec = app.do(http.MethodGet, "/review/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice":"even better"`)
	assert.NotContains(t, rec.Body.String(), "great\"")

	// Delete, then delete again.
	rec = app.do(http.MethodDelete, "/customer/auth/review/1", "", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodDelete, "/customer/auth/review/1", "", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing password", body: `{"username":"alice"}`, want: http.StatusBadRequest},
		{name: "missing username", body: `{"password":"pw"}`, want: http.StatusBadRequest},
		{name: "empty body", body: `{}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, "/register", tt.body, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewRequiresSession(t *testing.T) {
	app := newTestApp(t)

	// No session record at all.
	rec := app.do(http.MethodPut, "/customer/auth/review/1", `{"review":"great"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_LOGGED_IN")
}

func TestReviewRejectsExpiredToken(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()

	// The session record survives expiry; the token inside it does not.
	app.clock.Advance(time.Hour + time.Minute)

	rec = app.do(http.MethodPut, "/customer/auth/review/1", `{"review":"late"}`, cookies)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestReviewUnknownISBNIs404EvenWhenAuthenticated(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()

	rec = app.do(http.MethodPut, "/customer/auth/review/999", `{"review":"great"}`, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewEmptyTextIs400(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()

	rec = app.do(http.MethodPut, "/customer/auth/review/1", `{}`, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewTextFallsBackToQueryParam(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = app.do(http.MethodPost, "/customer/login", `{"username":"alice","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()

	rec = app.do(http.MethodPut, "/customer/auth/review/1?review=classic", "", cookies)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodGet, "/review/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice":"classic"`)
}

func TestCatalogReads(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Things Fall Apart")

	rec = app.do(http.MethodGet, "/isbn/8", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pride and Prejudice")

	rec = app.do(http.MethodGet, "/isbn/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/author/jane%20austen", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isbn":"8"`)

	rec = app.do(http.MethodGet, "/author/nobody", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/title/comedy", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isbn":"3"`)

	// A book with no reviews reads as not found.
	rec = app.do(http.MethodGet, "/review/2", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
