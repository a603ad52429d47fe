package http_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Trunks-api/internal/application/analytics"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Trunks-api/internal/interfaces/http"
	"github.com/jhoicas/Trunks-api/pkg/logger"
)

// brokenTx falla siempre, como una base caída.
type brokenTx struct{ err error }

func (b brokenTx) Run(context.Context, func(repository.Repos) error) error { return b.err }

func TestErrorInterno_NoExponeDetalleYSeRegistra(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Output: &logs})

	dbErr := errors.New(`pq: relation "nso_trunks" does not exist`)
	h := apphttp.NewDashboardHandler(appanalytics.NewDashboardUseCase(brokenTx{err: dbErr}, nil))

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/dashboard", h.GetStats)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "INTERNAL")
	assert.Contains(t, string(body), "error interno")
	assert.NotContains(t, string(body), "nso_trunks", "el detalle de la base no sale al cliente")

	assert.Contains(t, logs.String(), "nso_trunks", "la causa queda en el log")
	assert.Contains(t, logs.String(), `"status":500`)
}
