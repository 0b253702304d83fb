package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := Load(t.Context())
	require.NoError(t, err)

	for _, path := range []string{
		"/login",
		"/patients",
		"/patients/{cpf}",
		"/patients/{cpf}/appointments",
		"/appointments",
		"/appointments/cancellation",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	login := doc.Paths.Find("/login").Post
	require.NotNil(t, login)
	require.NotNil(t, login.Security)
	assert.Empty(t, *login.Security)

	assert.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
	assert.Contains(t, doc.Components.Schemas["Appointment"].Value.Properties, "cancellation_reason")
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register(t.Context()))
	require.NoError(t, Register(t.Context()))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	assert.Equal(t, "3.0.3", body["openapi"])
	assert.Contains(t, body["paths"], "/appointments/cancellation")
}
