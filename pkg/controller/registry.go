package controller

// Registry maps feature kinds to features with insertion-order iteration,
// so fan-out notifications and dump output are deterministic.
//
// Registry is not safe for concurrent use on its own; the controller
// accesses it only under its lock.
type Registry struct {
	kinds    []FeatureKind
	features map[FeatureKind]Feature
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		features: make(map[FeatureKind]Feature),
	}
}

// Add registers feature under kind, silently replacing any prior
// registration. A replaced kind keeps its original position in iteration
// order.
func (r *Registry) Add(kind FeatureKind, feature Feature) {
	if _, exists := r.features[kind]; !exists {
		r.kinds = append(r.kinds, kind)
	}
	r.features[kind] = feature
}

// Get returns the feature registered under kind.
func (r *Registry) Get(kind FeatureKind) (Feature, bool) {
	f, ok := r.features[kind]
	return f, ok
}

// Remove unregisters kind and returns the removed feature, or nil if the
// kind was never registered.
func (r *Registry) Remove(kind FeatureKind) Feature {
	f, ok := r.features[kind]
	if !ok {
		return nil
	}
	delete(r.features, kind)
	for i, k := range r.kinds {
		if k == kind {
			r.kinds = append(r.kinds[:i], r.kinds[i+1:]...)
			break
		}
	}
	return f
}

// Len returns the number of registered features.
func (r *Registry) Len() int {
	return len(r.features)
}

// Kinds returns the registered kinds in insertion order.
func (r *Registry) Kinds() []FeatureKind {
	kinds := make([]FeatureKind, len(r.kinds))
	copy(kinds, r.kinds)
	return kinds
}

// Each calls fn for every feature in insertion order.
func (r *Registry) Each(fn func(kind FeatureKind, feature Feature)) {
	for _, kind := range r.kinds {
		fn(kind, r.features[kind])
	}
}

// Clear removes every registration.
func (r *Registry) Clear() {
	r.kinds = nil
	r.features = make(map[FeatureKind]Feature)
}
