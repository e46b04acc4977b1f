package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "Construction ERP API", parsed.Info.Title)

	for path, methods := range map[string][]string{
		"/auth/register":        {"post"},
		"/auth/login":           {"post"},
		"/auth/logout":          {"post"},
		"/users":                {"get", "post"},
		"/users/me":             {"get"},
		"/users/{id}":           {"get", "put", "delete"},
		"/projects":             {"get", "post"},
		"/projects/{id}":        {"get", "put", "delete"},
		"/ai/project-risk":      {"get"},
		"/ai/project-risk/{id}": {"get"},
		"/ping":                 {"get"},
	} {
		for _, m := range methods {
			_, ok := parsed.Paths[path][m]
			require.True(t, ok, "missing %s %s", m, path)
		}
	}
}
