package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollToKnownSection(t *testing.T) {
	target, ok := ScrollTo("projects")
	require.True(t, ok)
	require.Equal(t, Projects, target.Anchor)
	require.Equal(t, "#projects", target.Href)

	target, ok = ScrollTo("#contact")
	require.True(t, ok)
	require.Equal(t, Contact, target.Anchor)
}

func TestScrollToUnknownSectionIsNoop(t *testing.T) {
	target, ok := ScrollTo("nonexistent")
	require.False(t, ok)
	require.Equal(t, Target{}, target)

	_, ok = ScrollTo("")
	require.False(t, ok)
}

func TestBuildMarksActive(t *testing.T) {
	items := Build(Skills)
	require.Len(t, items, len(Main))
	for _, it := range items {
		require.Equal(t, it.Anchor == Skills, it.Active, it.Anchor)
		require.Equal(t, "#"+string(it.Anchor), it.Href)
	}
	require.True(t, Build("")[0].Active)
}

func TestVerifyAnchors(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, a := range Anchors() {
		b.WriteString(`<section id="` + string(a) + `"></section>`)
	}
	b.WriteString("</body></html>")
	require.NoError(t, VerifyAnchors(strings.NewReader(b.String())))

	err := VerifyAnchors(strings.NewReader(`<section id="home"></section><div id="home"></div>`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "home appears 2 times")
	require.Contains(t, err.Error(), "about missing")
}

func TestQuickLinksCoverEveryAnchor(t *testing.T) {
	links := QuickLinks()
	require.Len(t, links, len(Anchors()))
	for i, it := range links {
		require.False(t, it.Active)
		require.Equal(t, Anchors()[i], it.Anchor)
	}
}
