package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/Trunks-api/internal/application/analytics"
	"github.com/jhoicas/Trunks-api/internal/application/auth"
	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Trunks-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// API completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminPassword    = "admin123"
	operatorPassword = "noc-password"
)

type testAPI struct {
	app      *fiber.App
	store    *memory.Store
	metrics  *apphttp.Metrics
	admin    string // header Authorization
	operator string
	opUserID int64
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	users := store.Users()
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: "router-test-secret", ExpMinutes: 60, Issuer: "trunks-api-test"})

	created, err := authUC.SeedAdmin(ctx, adminPassword)
	require.NoError(t, err)
	require.True(t, created)

	hash, err := bcrypt.GenerateFromPassword([]byte(operatorPassword), bcrypt.MinCost)
	require.NoError(t, err)
	op := &entity.User{Username: "noc", PasswordHash: string(hash), Role: entity.RoleOperator}
	require.NoError(t, users.Create(ctx, op))

	metrics := apphttp.NewMetrics("trunks_test")
	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: appanalytics.NewDashboardUseCase(store, nil),
		NSOTrunkUC:  trunks.NewNSOTrunkUseCase(store, nil),
		VNOTrunkUC:  trunks.NewVNOTrunkUseCase(store, nil),
		CustomerUC:  trunks.NewCustomerUseCase(store, nil),
		MappingUC:   trunks.NewTrunkMappingUseCase(store, nil),
		DIDUC:       trunks.NewDIDUseCase(store, nil),
		Metrics:     metrics,
	})

	api := &testAPI{app: app, store: store, metrics: metrics, opUserID: op.ID}
	api.admin = "Bearer " + api.login(t, "admin", adminPassword).Token
	api.operator = "Bearer " + api.login(t, "noc", operatorPassword).Token
	return api
}

func (a *testAPI) do(t *testing.T, method, path, authHeader string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func (a *testAPI) login(t *testing.T, username, password string) dto.LoginResponse {
	t.Helper()
	resp, raw := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func (a *testAPI) create(t *testing.T, path string, body interface{}) int64 {
	t.Helper()
	resp, raw := a.do(t, http.MethodPost, path, a.admin, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var out dto.CreatedResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotEmpty(t, out.Message)
	return out.ID
}

func decodeError(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out.Message)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EscenarioDashboard212(t *testing.T) {
	api := newTestAPI(t)

	nso := api.create(t, "/api/nso-trunks", map[string]interface{}{
		"serviceId": "N1", "pilotNumber": "100", "channels": 100, "areaCode": "212",
	})
	vno := api.create(t, "/api/vno-trunks", map[string]interface{}{
		"serviceId": "V1", "pilotNumber": "200", "channels": 50, "areaCode": "212", "customerId": nil,
	})
	api.create(t, "/api/trunk-mappings", map[string]interface{}{
		"nsoTrunkId": nso, "vnoTrunkId": vno, "allocatedChannels": 40,
	})

	resp, raw := api.do(t, http.MethodGet, "/api/dashboard", api.operator, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var stats dto.DashboardStatsDTO
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, dto.AreaStatsDTO{TotalChannels: 100, AllocatedChannels: 40, RemainingChannels: 60, Utilization: 40.0}, stats.StatsByAreaCode["212"])
	assert.Equal(t, 1, stats.TotalNSOTrunks)
	assert.Equal(t, 1, stats.TotalVNOTrunks)
	assert.Equal(t, 0, stats.TotalDIDs)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Contains(t, generic, "statsByAreaCode")
}

func TestAPI_DashboardSinToken(t *testing.T) {
	api := newTestAPI(t)
	resp, raw := api.do(t, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, raw).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth Gate
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginFallidoMismaRespuesta(t *testing.T) {
	api := newTestAPI(t)

	wrongPass, rawWrong := api.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	unknown, rawUnknown := api.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "nadie", Password: "incorrecta"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, wrongPass.StatusCode, unknown.StatusCode)
	assert.Equal(t, string(rawWrong), string(rawUnknown), "no se distingue usuario inexistente de password incorrecto")
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rawWrong).Code)
}

func TestAPI_LoginCamposRequeridos(t *testing.T) {
	api := newTestAPI(t)

	resp, raw := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, raw)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "password")

	resp, raw = api.do(t, http.MethodPost, "/api/auth/login", "", "{no es json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, raw).Code)
}

func TestAPI_LoginDevuelveRolYUsername(t *testing.T) {
	api := newTestAPI(t)
	out := api.login(t, "noc", operatorPassword)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleOperator, out.Role)
	assert.Equal(t, "noc", out.Username)
}

func TestAPI_PuertaAdmin_401_403_200(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]interface{}{"name": "ACME", "email": "ops@acme.test"}

	resp, _ := api.do(t, http.MethodPost, "/api/customers", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "sin credencial")

	resp, raw := api.do(t, http.MethodPost, "/api/customers", api.operator, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "credencial válida sin rol admin")
	assert.Equal(t, "FORBIDDEN", decodeError(t, raw).Code)

	resp, _ = api.do(t, http.MethodPost, "/api/customers", api.admin, body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, "admin")
}

func TestAPI_LecturaPermitidaANoAdmin(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/api/nso-trunks", "/api/vno-trunks", "/api/customers", "/api/trunk-mappings", "/api/dids", "/api/dashboard"} {
		resp, _ := api.do(t, http.MethodGet, path, api.operator, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestAPI_CambioDeRolAplicaSinReLogin(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()
	body := map[string]interface{}{"name": "ACME", "email": "ops@acme.test"}

	resp, _ := api.do(t, http.MethodPost, "/api/customers", api.operator, body)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	require.NoError(t, api.store.Users().UpdateRole(ctx, api.opUserID, entity.RoleAdmin))
	resp, _ = api.do(t, http.MethodPost, "/api/customers", api.operator, body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, "el rol se re-lee del store, el token viejo sirve")

	require.NoError(t, api.store.Users().UpdateRole(ctx, api.opUserID, entity.RoleOperator))
	resp, _ = api.do(t, http.MethodDelete, "/api/customers/1", api.operator, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "la degradación también aplica de inmediato")
}

func TestAPI_UsuarioBorradoInvalidaToken(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.store.Users().Delete(context.Background(), api.opUserID))

	resp, raw := api.do(t, http.MethodGet, "/api/nso-trunks", api.operator, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, raw).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_BorrarClienteNoBorraSusVNO(t *testing.T) {
	api := newTestAPI(t)

	cust := api.create(t, "/api/customers", map[string]interface{}{"name": "ACME", "email": "ops@acme.test", "phone": "+1 212 555 0100"})
	vno := api.create(t, "/api/vno-trunks", map[string]interface{}{
		"serviceId": "V1", "pilotNumber": "200", "channels": 10, "areaCode": "646", "customerId": cust,
	})

	resp, _ := api.do(t, http.MethodDelete, "/api/customers/1", api.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw := api.do(t, http.MethodGet, "/api/vno-trunks/1", api.operator, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.VNOTrunkResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, vno, got.ID)
	require.NotNil(t, got.CustomerID, "el customerId huérfano se conserva")
	assert.Equal(t, cust, *got.CustomerID)

	resp, _ = api.do(t, http.MethodGet, "/api/customers/1", api.operator, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_CampoRequeridoAusente_400(t *testing.T) {
	api := newTestAPI(t)
	cases := []struct {
		path  string
		body  map[string]interface{}
		field string
	}{
		{"/api/nso-trunks", map[string]interface{}{"serviceId": "N1", "pilotNumber": "100", "areaCode": "212"}, "channels"},
		{"/api/vno-trunks", map[string]interface{}{"pilotNumber": "200", "channels": 5, "areaCode": "212"}, "serviceId"},
		{"/api/customers", map[string]interface{}{"name": "ACME"}, "email"},
		{"/api/trunk-mappings", map[string]interface{}{"nsoTrunkId": 1, "allocatedChannels": 5}, "vnoTrunkId"},
		{"/api/dids", map[string]interface{}{"didNumber": "2125550100", "trunkId": 1}, "trunkType"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, raw := api.do(t, http.MethodPost, tc.path, api.admin, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			e := decodeError(t, raw)
			assert.Equal(t, "VALIDATION", e.Code)
			assert.Contains(t, e.Message, tc.field)
		})
	}
}

func TestAPI_NoEncontrado_404(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]interface{}{"serviceId": "N1", "pilotNumber": "100", "channels": 10, "areaCode": "212"}

	resp, raw := api.do(t, http.MethodPut, "/api/nso-trunks/99", api.admin, body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, raw).Code)

	resp, _ = api.do(t, http.MethodDelete, "/api/dids/99", api.admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/trunk-mappings/99", api.operator, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_RutaInexistenteDevuelve404(t *testing.T) {
	api := newTestAPI(t)
	for _, auth := range []string{"", api.admin} {
		resp, _ := api.do(t, http.MethodGet, "/api/no-existe", auth, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "auth=%q", auth)
	}

	resp, _ := api.do(t, http.MethodGet, "/api/nso-trunks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "los recursos existentes siguen protegidos")
}

func TestAPI_IDNoNumerico_400(t *testing.T) {
	api := newTestAPI(t)
	resp, raw := api.do(t, http.MethodGet, "/api/dids/abc", api.operator, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeError(t, raw).Code)
}

func TestAPI_DuplicadoDevuelve409(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]interface{}{"didNumber": "2125550100", "trunkId": 1, "trunkType": "NSO"}
	api.create(t, "/api/dids", body)

	resp, raw := api.do(t, http.MethodPost, "/api/dids", api.admin, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeError(t, raw).Code)
}

func TestAPI_ActualizarConservaStatus(t *testing.T) {
	api := newTestAPI(t)
	id := api.create(t, "/api/nso-trunks", map[string]interface{}{
		"serviceId": "N1", "pilotNumber": "100", "channels": 100, "areaCode": "212", "status": "Maintenance",
	})

	resp, raw := api.do(t, http.MethodPut, "/api/nso-trunks/1", api.admin, map[string]interface{}{
		"serviceId": "N1", "pilotNumber": "101", "channels": 120, "areaCode": "212",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	_, raw = api.do(t, http.MethodGet, "/api/nso-trunks/1", api.operator, nil)
	var got dto.NSOTrunkResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "101", got.PilotNumber)
	assert.Equal(t, 120, got.Channels)
	assert.Equal(t, "Maintenance", got.Status)
}

func TestAPI_DIDStatusPorDefecto(t *testing.T) {
	api := newTestAPI(t)
	api.create(t, "/api/dids", map[string]interface{}{"didNumber": "2125550100", "trunkId": 7, "trunkType": "VNO"})

	_, raw := api.do(t, http.MethodGet, "/api/dids", api.operator, nil)
	var list []dto.DIDResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, entity.DefaultDIDStatus, list[0].Status)
	assert.Equal(t, int64(7), list[0].TrunkID, "el trunk referenciado no necesita existir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_MetricsExponeContadores(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "mal"})

	resp, raw := api.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(raw)
	assert.Contains(t, text, "trunks_test_http_requests_total")
	assert.Contains(t, text, "trunks_test_auth_login_failures_total 1")
}

var methodLabel = regexp.MustCompile(`method="([^"]*)"`)

func TestAPI_MetricsEtiquetaMetodoEstable(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]interface{}{"serviceId": "N1", "pilotNumber": "100", "channels": 10, "areaCode": "212"}
	for i := 0; i < 20; i++ {
		api.do(t, http.MethodPost, "/api/nso-trunks", api.admin, body)
		api.do(t, http.MethodPut, "/api/nso-trunks/1", api.admin, body)
		api.do(t, http.MethodGet, "/api/nso-trunks/1", api.operator, nil)
		api.do(t, http.MethodDelete, "/api/nso-trunks/1", api.admin, nil)
	}

	resp, raw := api.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	valid := map[string]bool{
		http.MethodGet: true, http.MethodPost: true, http.MethodPut: true, http.MethodDelete: true,
	}
	matches := methodLabel.FindAllStringSubmatch(string(raw), -1)
	require.NotEmpty(t, matches)
	seen := map[string]bool{}
	for _, m := range matches {
		assert.True(t, valid[m[1]], "etiqueta method inesperada: %q", m[1])
		seen[m[1]] = true
	}
	for method := range valid {
		assert.True(t, seen[method], "falta la serie de %s", method)
	}
}
