package cache

// ScopedKeyer prefixes every key from an inner Keyer, so several catalogs or
// environments can share one backend without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, defaulting to [DefaultKeyer] when nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) LayoutKey(configHash string, count int) string {
	return k.prefix + k.inner.LayoutKey(configHash, count)
}

func (k *ScopedKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(catalogHash, opts)
}
