package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coop-admin/internal/adapters/http/middleware"
	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/config"
	"coop-admin/internal/core/loading"
	"coop-admin/internal/core/mockdata"
	"coop-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode:    "dev",
		DataSource: config.DataSourceMock,
		JWT:        config.JWTConfig{Secret: "test_secret", TokenMins: 60},
		Cookie:     config.CookieConfig{SameSite: "lax"},
		Session:    config.SessionConfig{TokenKey: "token", LoginPath: "/login"},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	dashboard := services.NewDashboardService(mockdata.NewProvider(0), log, loading.WithDelay(0))
	t.Cleanup(dashboard.Close)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	Setup(app, repositories.NewFixtureSet(), dashboard, cfg)
	return app
}

type result struct {
	status int
	header http.Header
	body   map[string]interface{}
}

func call(t *testing.T, app *fiber.App, method, path, body, cookie string) result {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept", "application/json")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := result{status: resp.StatusCode, header: resp.Header}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out.body))
	}
	return out
}

func items(t *testing.T, r result) []interface{} {
	t.Helper()
	data, ok := r.body["data"].(map[string]interface{})
	require.True(t, ok, "data is an object: %v", r.body)
	list, ok := data["items"].([]interface{})
	require.True(t, ok, "items is a list: %v", data)
	return list
}

const session = "token=anything"

func TestHealthRoutes(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "GET", "/health", "", "")
	assert.Equal(t, fiber.StatusOK, r.status)
	checks := r.body["checks"].(map[string]interface{})
	assert.Equal(t, "disabled", checks["database"])

	r = call(t, app, "GET", "/", "", "")
	assert.Equal(t, "mock", r.body["dataSource"])

	r = call(t, app, "GET", "/api/v1", "", "")
	assert.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, "public, max-age=60", r.header.Get("Cache-Control"))
}

func TestGatedRoutes_WithoutToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/users", "/api/v1/aportes", "/api/v1/cuotas/1", "/api/v1/creditos"} {
		r := call(t, app, "GET", path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, r.status, path)
		assert.Equal(t, "/login", r.body["redirect"], path)
	}

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("Accept", "text/html")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLoginThenBrowse(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "POST", "/api/v1/auth/login", `{"email":"maria.gomez@coopahorro.co"}`, "")
	require.Equal(t, fiber.StatusOK, r.status, r.body)

	setCookie := r.header.Get("Set-Cookie")
	require.True(t, strings.HasPrefix(setCookie, "token="))
	cookie := strings.SplitN(setCookie, ";", 2)[0]

	r = call(t, app, "GET", "/api/v1/users", "", cookie)
	assert.Equal(t, fiber.StatusOK, r.status)
	assert.Len(t, items(t, r), 6)
	assert.Equal(t, "private, no-store", r.header.Get("Cache-Control"))

	r = call(t, app, "POST", "/api/v1/auth/logout", "", cookie)
	assert.Equal(t, fiber.StatusOK, r.status)
	assert.True(t, strings.HasPrefix(r.header.Get("Set-Cookie"), "token=;"))
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "POST", "/api/v1/auth/login", `{"email":"ana.castro@correo.com"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, r.status)
	assert.Empty(t, r.header.Get("Set-Cookie"))

	r = call(t, app, "POST", "/api/v1/auth/login", `{"email":"nadie@correo.com"}`, "")
	assert.Equal(t, fiber.StatusNotFound, r.status)

	r = call(t, app, "POST", "/api/v1/auth/login", `{"email":`, "")
	assert.Equal(t, fiber.StatusBadRequest, r.status)
}

func TestUserRoutes(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "GET", "/api/v1/users?role=socio&status=activo", "", session)
	assert.Equal(t, fiber.StatusOK, r.status)
	assert.Len(t, items(t, r), 3)

	r = call(t, app, "GET", "/api/v1/users?role=Socio", "", session)
	assert.Equal(t, fiber.StatusBadRequest, r.status)

	r = call(t, app, "GET", "/api/v1/users/3", "", session)
	assert.Equal(t, fiber.StatusOK, r.status)
	user := r.body["data"].(map[string]interface{})
	assert.Equal(t, "socio", user["role"])
	assert.Equal(t, "luisa.martinez@correo.com", user["email"])

	r = call(t, app, "GET", "/api/v1/users/99", "", session)
	assert.Equal(t, fiber.StatusNotFound, r.status)

	r = call(t, app, "GET", "/api/v1/users/abc", "", session)
	assert.Equal(t, fiber.StatusBadRequest, r.status)
}

func TestAporteRoutes(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "GET", "/api/v1/aportes?asociadoId=3", "", session)
	require.Equal(t, fiber.StatusOK, r.status)
	list := items(t, r)
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	_, isNumber := first["monto"].(float64)
	assert.True(t, isNumber, "monto is a JSON number")
	assert.Contains(t, first, "comprobante")

	r = call(t, app, "GET", "/api/v1/aportes?estado=maybe", "", session)
	assert.Equal(t, fiber.StatusBadRequest, r.status)

	r = call(t, app, "GET", "/api/v1/aportes?asociadoId=x", "", session)
	assert.Equal(t, fiber.StatusBadRequest, r.status)

	r = call(t, app, "GET", "/api/v1/aportes/1", "", session)
	assert.Equal(t, fiber.StatusOK, r.status)

	r = call(t, app, "GET", "/api/v1/aportes/404", "", session)
	assert.Equal(t, fiber.StatusNotFound, r.status)
}

func TestCreditoAndCuotaRoutes(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "GET", "/api/v1/creditos?estado=PENDIENTE", "", session)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Len(t, items(t, r), 2)

	r = call(t, app, "GET", "/api/v1/creditos/4", "", session)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, "RECHAZADO", r.body["data"].(map[string]interface{})["estado"])

	r = call(t, app, "GET", "/api/v1/cuotas?creditoId=1", "", session)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Len(t, items(t, r), 3)

	r = call(t, app, "GET", "/api/v1/cuotas?creditoId=42", "", session)
	assert.Equal(t, fiber.StatusNotFound, r.status)

	r = call(t, app, "GET", "/api/v1/cuotas?estado=PENDIENTE", "", session)
	require.Equal(t, fiber.StatusOK, r.status)
	for _, it := range items(t, r) {
		assert.Equal(t, "PENDIENTE", it.(map[string]interface{})["estado"])
	}

	r = call(t, app, "GET", "/api/v1/cuotas/2", "", session)
	assert.Equal(t, fiber.StatusOK, r.status)
}

func TestDashboardRoutes(t *testing.T) {
	app := newTestApp(t)

	r := call(t, app, "GET", "/api/v1/dashboard", "", session)
	require.Equal(t, fiber.StatusOK, r.status)
	view := r.body["data"].(map[string]interface{})
	assert.Contains(t, view, "loading")
	data := view["data"].(map[string]interface{})
	assert.Equal(t, float64(1250), data["totalUsers"])
	assert.Len(t, data["savingsTransactions"], 6)

	r = call(t, app, "POST", "/api/v1/dashboard/refresh", "", session)
	assert.Equal(t, fiber.StatusOK, r.status)
}
