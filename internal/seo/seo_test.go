package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPersonSchemaOmitsEmptyFields(t *testing.T) {
	m := PersonSchema(Person{Name: "Ada"})
	require.Equal(t, "Person", m["@type"])
	require.NotContains(t, m, "email")
	require.NotContains(t, m, "sameAs")

	m = PersonSchema(Person{Name: "Ada", Email: "a@example.com", Location: "Douala", SameAs: []string{"https://github.com/ada"}})
	require.Equal(t, "mailto:a@example.com", m["email"])
	require.Contains(t, m, "address")
	require.Equal(t, []string{"https://github.com/ada"}, m["sameAs"])
}

func TestScriptIsValidJSON(t *testing.T) {
	out := Script(WebSite("Portfolio", "https://example.com", "en"))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "WebSite", decoded["@type"])
	require.Equal(t, "en", decoded["inLanguage"])
}

func TestCreativeWork(t *testing.T) {
	m := CreativeWork("Reepls", "Podcasts", "", []string{"React"})
	require.NotContains(t, m, "url")
	require.Equal(t, []string{"React"}, m["keywords"])
}

func TestAbsolute(t *testing.T) {
	require.Equal(t, "/", Absolute("", "/"))
	require.Equal(t, "https://x.dev/?category=Mobile", Absolute("https://x.dev", "/?category=Mobile"))
	require.Equal(t, "https://x.dev/a", Absolute("https://x.dev", "a"))
}
