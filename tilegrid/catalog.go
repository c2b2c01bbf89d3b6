package tilegrid

// Catalog resolves a TileKind to the Resource drawn for it.
// Resolve returns nil for kinds that are not configured.
type Catalog interface {
	Resolve(kind TileKind) Resource
}

// Named is a Resource identified only by its name
type Named string

// Name implements Resource
func (n Named) Name() string {
	return string(n)
}

// NamedCatalog is a Catalog backed by a plain map
type NamedCatalog map[TileKind]Resource

// NewNamedCatalog builds a catalog of Named resources from kind names.
// Empty names are left unconfigured.
func NewNamedCatalog(names map[TileKind]string) NamedCatalog {
	c := make(NamedCatalog, len(names))
	for kind, name := range names {
		if name == "" {
			continue
		}
		c[kind] = Named(name)
	}
	return c
}

// Resolve implements Catalog
func (c NamedCatalog) Resolve(kind TileKind) Resource {
	return c[kind]
}

// Missing returns the tile kinds that resolve to nil in catalog
func Missing(catalog Catalog) []TileKind {
	var missing []TileKind
	for _, kind := range TileKinds {
		if catalog.Resolve(kind) == nil {
			missing = append(missing, kind)
		}
	}
	return missing
}
