package jptr

// Get resolves path against doc, going through DefaultCache, and asserts the
// result against T. The dynamic type must match exactly; no numeric
// conversion is attempted. Use T = any to accept whatever is found,
// including null.
func Get[T any](doc any, path string) (T, error) {
	p, err := DefaultCache.Parse(path)
	if err != nil {
		var zero T
		return zero, err
	}
	node, err := p.Find(doc)
	if err != nil {
		var zero T
		return zero, err
	}
	return assertValue[T](node, p)
}

// Has reports whether path parses and resolves against doc. Malformed paths
// are simply absent.
func Has(doc any, path string) bool {
	p, err := DefaultCache.Parse(path)
	if err != nil {
		return false
	}
	return p.Exists(doc)
}
