package navigation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lqr-hy/docs/internal/config"
)

func groupTexts(groups []NavGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Text)
	}
	return out
}

func TestBuildNav_DefaultGroups(t *testing.T) {
	nav := BuildNav(sampleTree(), config.NavConfig{
		Groups:   config.DefaultNavGroups(),
		Fallback: config.DefaultFallbackGroup,
	})

	require.Equal(t, []string{"基础", "框架", "可视化", "工程化", "其他"}, groupTexts(nav))

	assert.Equal(t, []NavItem{{Text: "Javascript", Link: "/Javascript/01-basics/01-closure", ActiveMatch: "/Javascript/"}}, nav[0].Items)
	assert.Equal(t, []NavItem{{Text: "Vue", Link: "/Vue/01-core/01-reactivity/01-ref", ActiveMatch: "/Vue/"}}, nav[1].Items)
	assert.Empty(t, nav[2].Items)
	assert.NotNil(t, nav[2].Items)
	assert.Equal(t, []NavItem{{Text: "Git", Link: "/Git/01-branch", ActiveMatch: "/Git/"}}, nav[3].Items)
	assert.Equal(t, []NavItem{{Text: "Rust", Link: "/Rust/01-ownership", ActiveMatch: "/Rust/"}}, nav[4].Items)
}

func TestBuildNav_OmitEmpty(t *testing.T) {
	nav := BuildNav(sampleTree(), config.NavConfig{
		Groups:    config.DefaultNavGroups(),
		Fallback:  config.DefaultFallbackGroup,
		OmitEmpty: true,
	})
	assert.Equal(t, []string{"基础", "框架", "工程化", "其他"}, groupTexts(nav))
}

func TestBuildNav_FallbackIsConfiguredGroup(t *testing.T) {
	nav := BuildNav(sampleTree(), config.NavConfig{
		Groups: []config.NavGroup{
			{Text: "Tools", Members: []string{"Git"}},
			{Text: "Languages", Members: []string{"Javascript"}},
		},
		Fallback: "Languages",
	})

	require.Equal(t, []string{"Tools", "Languages"}, groupTexts(nav))
	var names []string
	for _, it := range nav[1].Items {
		names = append(names, it.Text)
	}
	assert.Equal(t, []string{"Javascript", "Rust", "Vue"}, names)
}

func TestBuildNav_EmptyGroupEncodesItems(t *testing.T) {
	nav := BuildNav(nil, config.NavConfig{Fallback: "其他"})
	data, err := json.Marshal(nav)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"其他","items":[]}]`, string(data))
}

func TestBuildLegacyNav(t *testing.T) {
	nav := BuildLegacyNav(sampleTree()[:2])
	assert.Equal(t, []NavItem{
		{Text: "Home", Link: "/"},
		{Text: "Git", Link: "/Git/"},
		{Text: "Javascript", Link: "/Javascript/"},
	}, nav)
}

func TestFromLegacyConfig(t *testing.T) {
	items := FromLegacyConfig([]config.LegacyNavItem{
		{Text: "Home", Link: "/"},
		{Text: "其他", Link: "/other/", Items: []config.LegacyNavItem{{Text: "docker", Link: "/other/docker/"}}},
	})
	assert.Equal(t, []NavItem{
		{Text: "Home", Link: "/"},
		{Text: "其他", Link: "/other/", Items: []NavItem{{Text: "docker", Link: "/other/docker/"}}},
	}, items)
	assert.Nil(t, FromLegacyConfig(nil))
}
