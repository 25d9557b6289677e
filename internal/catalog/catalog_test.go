package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	projects := c.Projects()
	require.Len(t, projects, 3)
	require.Equal(t, "sweetslickui", projects[0].ID)
	require.Equal(t, CategoryFullStack, projects[1].Category)
	require.NotEmpty(t, projects[0].LongDescriptionHTML)

	require.Equal(t, "Mokfembam Fabrice", c.Profile().FullName())
	require.False(t, c.Profile().CVAvailable(), "no CV is published")
	require.Len(t, c.Profile().StoryHTML, 3)
	require.Contains(t, string(c.Profile().StoryHTML[1]), "<strong>full-stack development</strong>")

	require.Len(t, c.Process(), 4)
	require.Len(t, c.Social(), 4)
	require.Len(t, c.Services(), 5)
	require.Len(t, c.Skills(), 12)
}

func TestProjectsReturnsCopies(t *testing.T) {
	c := Default()
	first := c.Projects()
	first[0].Title = "mutated"
	first[0].Features[0] = "mutated"

	again := c.Projects()
	require.Equal(t, "SweetSlickUI", again[0].Title)
	require.NotEqual(t, "mutated", again[0].Features[0])
}

func TestProjectLookup(t *testing.T) {
	c := Default()
	p, ok := c.Project("reepls")
	require.True(t, ok)
	require.Equal(t, "Reepls", p.Title)
	require.True(t, p.HasLinks())

	_, ok = c.Project("nope")
	require.False(t, ok)
}

func TestParseRejectsInvalidDocument(t *testing.T) {
	raw := `
profile:
  first_name: ""
projects:
  - id: a
    title: A
    category: Frontend
    live_url: "javascript:alert(1)"
  - id: a
    title: B
    category: Desktop
  - id: close
    title: C
    category: Mobile
skills:
  - {name: Go, percentage: 120}
social:
  - {label: Site, href: "ftp://example.com"}
`
	_, err := Parse([]byte(raw))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	joined := strings.Join(verr.Problems, "\n")
	require.Contains(t, joined, "profile.first_name is required")
	require.Contains(t, joined, `projects[0].live_url "javascript:alert(1)"`)
	require.Contains(t, joined, `projects[1].id "a" is duplicated`)
	require.Contains(t, joined, `projects[1].category "Desktop" is unknown`)
	require.Contains(t, joined, `projects[2].id "close" is reserved`)
	require.Contains(t, joined, "skills[0].percentage 120 out of range")
	require.Contains(t, joined, `social[0].href "ftp://example.com"`)
}

func TestValidateEmptyIDsAreRequiredNotDuplicated(t *testing.T) {
	raw := `
profile:
  first_name: A
projects:
  - {title: A, category: Frontend}
  - {title: B, category: Mobile}
`
	_, err := Parse([]byte(raw))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	joined := strings.Join(verr.Problems, "\n")
	require.Contains(t, joined, "projects[0].id is required")
	require.Contains(t, joined, "projects[1].id is required")
	require.NotContains(t, joined, "duplicated")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("profile:\n  first_name: A\n  nickname: B\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "nickname")
}

func TestLoadFileAndDumpRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, embeddedCatalog, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	again, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, c.Projects(), again.Projects())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	got := string(RenderMarkdown("hello <script>alert(1)</script> **bold**"))
	require.NotContains(t, got, "<script>")
	require.Contains(t, got, "<strong>bold</strong>")
	require.Equal(t, "", string(RenderMarkdown("   ")))
}

func TestCategoryKnown(t *testing.T) {
	for _, c := range Categories() {
		require.True(t, c.Known(), c)
	}
	require.False(t, Category("All").Known())
	require.False(t, Category("").Known())
}
