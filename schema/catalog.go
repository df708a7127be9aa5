package schema

import "github.com/goliatone/go-botblock"

// Catalog represents palette data for authoring surfaces, grouped by the
// workspace context the blocks may be dropped into.
type Catalog struct {
	Logic []CatalogItem `json:"logic"`
	Flex  []CatalogItem `json:"flex"`
}

// CatalogItem is one palette entry backed by a block definition.
type CatalogItem struct {
	Type        string            `json:"type"`
	Label       string            `json:"label"`
	Category    botblock.Category `json:"category"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
}

// BuildCatalog derives palette entries from the registry, in category
// order then type order within a category.
func BuildCatalog(r *Registry) Catalog {
	catalog := Catalog{}
	for _, cat := range botblock.Categories() {
		for _, def := range r.ByCategory(cat) {
			item := CatalogItem{
				Type:        def.Type,
				Label:       def.Label,
				Category:    def.Category,
				Description: def.Description,
				Tags:        def.Tags,
			}
			if def.SupportsContext(botblock.ContextLogic) {
				catalog.Logic = append(catalog.Logic, item)
			}
			if def.SupportsContext(botblock.ContextFlex) {
				catalog.Flex = append(catalog.Flex, item)
			}
		}
	}
	return catalog
}
