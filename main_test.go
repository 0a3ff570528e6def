package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// swagger.New паникует при отсутствии файла спецификации,
// сервис с ним не стартует
func TestSwaggerSpecServed(t *testing.T) {
	var handler fiber.Handler
	require.NotPanics(t, func() {
		handler = swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: "./docs/swagger.json",
		})
	})

	app := fiber.New()
	app.Use(handler)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger", nil))
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
