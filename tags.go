package socgen

import "sort"

// Tags is a set of tool directives attached to a domain or region, such as
// "keep". The composition core records them verbatim for downstream
// generators.
//
type Tags map[string]struct{}

func newTags(tags []string) Tags {
	if len(tags) == 0 {
		return nil
	}
	t := make(Tags, len(tags))
	for _, s := range tags {
		t[s] = struct{}{}
	}
	return t
}

// Has reports whether tag is set.
//
func (t Tags) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// List returns the tags in sorted order.
//
func (t Tags) List() []string {
	if len(t) == 0 {
		return nil
	}
	l := make([]string, 0, len(t))
	for s := range t {
		l = append(l, s)
	}
	sort.Strings(l)
	return l
}

func (t Tags) clone() Tags {
	if t == nil {
		return nil
	}
	c := make(Tags, len(t))
	for s := range t {
		c[s] = struct{}{}
	}
	return c
}
