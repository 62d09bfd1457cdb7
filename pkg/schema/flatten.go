package schema

// Flattened is an order-preserving mapping from dotted field path to the
// component definition at that path. It is derived once per schema and read
// only thereafter; paths are unique by construction.
type Flattened struct {
	order      []string
	components map[string]Component
}

// Lookup returns the component registered at path.
func (f *Flattened) Lookup(path string) (Component, bool) {
	if f == nil {
		return Component{}, false
	}
	component, ok := f.components[path]
	return component, ok
}

// Paths returns every flattened path in schema declaration order. Callers must
// not mutate the returned slice.
func (f *Flattened) Paths() []string {
	if f == nil {
		return nil
	}
	return f.order
}

// Len reports the number of flattened entries.
func (f *Flattened) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

func (f *Flattened) add(path string, component Component) {
	if _, exists := f.components[path]; !exists {
		f.order = append(f.order, path)
	}
	f.components[path] = component
}

// Flatten walks the component tree depth-first and returns the dotted-path
// mapping. Layout-only components are skipped unless includeLayout is set;
// the redaction engine needs them included so nested protected flags are
// visited. Containers and datagrids namespace their children with their own
// key; layout groupings do not.
func Flatten(components []Component, includeLayout bool) *Flattened {
	flat := &Flattened{components: make(map[string]Component)}
	Each(components, func(component Component, path string) {
		if component.Key == "" {
			return
		}
		if component.IsLayout() && !includeLayout {
			return
		}
		flat.add(path, component)
	})
	return flat
}

// Each visits every component in the tree, including those nested inside
// layout groupings, containers, and datagrids, invoking fn with the dotted
// field path of each node.
func Each(components []Component, fn func(component Component, path string)) {
	eachComponent(components, "", fn)
}

func eachComponent(components []Component, prefix string, fn func(Component, string)) {
	for _, component := range components {
		path := joinPath(prefix, component.Key)
		fn(component, path)
		if len(component.Components) == 0 {
			continue
		}
		// Layout groupings are transparent for path purposes; composite
		// components namespace their children.
		childPrefix := prefix
		if !component.IsLayout() {
			childPrefix = path
		}
		eachComponent(component.Components, childPrefix, fn)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}
