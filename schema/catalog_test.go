package schema

import (
	"testing"

	"github.com/goliatone/go-botblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogSplitsByContext(t *testing.T) {
	catalog := BuildCatalog(Default())

	require.NotEmpty(t, catalog.Logic)
	require.NotEmpty(t, catalog.Flex)

	for _, item := range catalog.Logic {
		assert.NotContains(t, []botblock.Category{
			botblock.CategoryFlexContainer,
			botblock.CategoryFlexLayout,
			botblock.CategoryFlexContent,
		}, item.Category, "flex categories never appear in the logic palette")
	}
	for _, item := range catalog.Flex {
		assert.Contains(t, []botblock.Category{
			botblock.CategoryFlexContainer,
			botblock.CategoryFlexLayout,
			botblock.CategoryFlexContent,
		}, item.Category)
	}
}

func TestBuildCatalogOrderIsStable(t *testing.T) {
	first := BuildCatalog(Default())
	second := BuildCatalog(Default())
	assert.Equal(t, first, second)

	// category order first, then type id within a category
	assert.Equal(t, botblock.CategoryEvent, first.Logic[0].Category)
}

func TestParseDefinitionsYAMLOverlay(t *testing.T) {
	src := []byte(`
version: "1"
definitions:
  - type: acme-survey
    label: Survey
    category: REPLY
    contexts: [LOGIC]
    defaults:
      reply: text
      text: How did we do?
`)

	set, err := ParseDefinitions(src)
	require.NoError(t, err)
	assert.Equal(t, "1", set.Version)
	require.Len(t, set.Definitions, 1)
	assert.Equal(t, "acme-survey", set.Definitions[0].Type)
	assert.Equal(t, botblock.CategoryReply, set.Definitions[0].Category)

	extended, err := Default().Extend(set.Definitions...)
	require.NoError(t, err)
	_, ok := extended.Lookup("acme-survey")
	assert.True(t, ok)
}

func TestParseDefinitionsRejectsInvalidOverlay(t *testing.T) {
	_, err := ParseDefinitions([]byte(`definitions: [{type: bad-def}]`))
	require.Error(t, err)
}

func TestConfigOptionVisibility(t *testing.T) {
	opt := ConfigOption{Key: "title", VisibleWhen: "template=buttons"}

	assert.True(t, opt.Visible(map[string]any{"template": "buttons"}))
	assert.False(t, opt.Visible(map[string]any{"template": "confirm"}))
	assert.False(t, opt.Visible(map[string]any{}))
	assert.True(t, ConfigOption{Key: "text"}.Visible(nil), "no predicate means always visible")
}
