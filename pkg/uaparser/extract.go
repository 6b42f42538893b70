package uaparser

import "strings"

// Fields holds the values extracted for one category. A missing key means the
// field is undefined; Fields never stores empty strings.
type Fields map[Field]string

// Get returns the value of f, or "" when f is undefined.
func (f Fields) Get(field Field) string { return f[field] }

// Extract builds Fields from the capture groups of a match. Each binding
// resolves its source, trims surrounding whitespace and then applies its
// transforms in order. Bindings without a field are skipped and a later
// binding of the same field overwrites an earlier one.
func Extract(groups []string, tmpl Template) Fields {
	out := make(Fields, len(tmpl))
	for _, b := range tmpl {
		if b.Field == "" {
			continue
		}
		v := strings.TrimSpace(b.Source.resolve(groups))
		for _, t := range b.Transforms {
			if v == "" {
				break
			}
			if t != nil {
				v = strings.TrimSpace(t(v))
			}
		}
		if v == "" {
			delete(out, b.Field)
			continue
		}
		out[b.Field] = v
	}
	return out
}
