// Package rulefile loads extension bundles from YAML documents.
//
// A file holds an optional bundle name and one list of rules per category:
//
//	name: acme
//	browser:
//	  - patterns: ['(?i)(acmebot)/([\w.]+)']
//	    template:
//	      - {field: name, group: 1}
//	      - {field: version, group: 2, transforms: [version]}
//	      - {field: type, value: crawler}
//
// Every pattern must pass uaparser.CheckPattern. Unknown category keys are
// ignored so files written for newer releases still load.
package rulefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	ua "github.com/dmitrymomot/uaparser/pkg/uaparser"
)

// File is the decoded form of a rule file.
type File struct {
	Name  string
	Rules ua.RuleSet
}

type ruleDoc struct {
	Patterns []string     `yaml:"patterns"`
	Template []bindingDoc `yaml:"template"`
}

type bindingDoc struct {
	Field      string         `yaml:"field"`
	Group      *int           `yaml:"group"`
	Value      *string        `yaml:"value"`
	Transforms []transformDoc `yaml:"transforms"`
}

// transformDoc accepts either a bare name ("lower") or a mapping
// ({alias: {...}} or {replace: {pattern, with}}).
type transformDoc struct {
	Name    string
	Alias   map[string]string
	Replace *replaceDoc
}

type replaceDoc struct {
	Pattern string `yaml:"pattern"`
	With    string `yaml:"with"`
}

func (t *transformDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&t.Name)
	case yaml.MappingNode:
		var m struct {
			Alias   map[string]string `yaml:"alias"`
			Replace *replaceDoc       `yaml:"replace"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		t.Alias, t.Replace = m.Alias, m.Replace
		return nil
	}
	return fmt.Errorf("%w: line %d", ErrUnknownTransform, node.Line)
}

// Load decodes a rule file from r.
func Load(r io.Reader) (File, error) {
	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return File{Rules: ua.RuleSet{}}, nil
		}
		return File{}, errors.Join(ErrMalformedFile, err)
	}

	f := File{Rules: ua.RuleSet{}}
	if n, ok := doc["name"]; ok {
		if err := n.Decode(&f.Name); err != nil {
			return File{}, errors.Join(ErrMalformedFile, err)
		}
	}

	for _, cat := range ua.Categories {
		node, ok := doc[string(cat)]
		if !ok {
			continue
		}
		var rules []ruleDoc
		if err := node.Decode(&rules); err != nil {
			return File{}, fmt.Errorf("%s: %w", cat, errors.Join(ErrMalformedFile, err))
		}
		table, err := buildTable(rules)
		if err != nil {
			return File{}, fmt.Errorf("%s: %w", cat, err)
		}
		f.Rules[cat] = table
	}
	return f, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open rule file: %w", err)
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func buildTable(rules []ruleDoc) (ua.RuleTable, error) {
	table := make(ua.RuleTable, 0, len(rules))
	for i, rd := range rules {
		tmpl, err := buildTemplate(rd.Template)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if len(rd.Patterns) == 0 {
			return nil, fmt.Errorf("rule %d: %w", i, ErrNoPatterns)
		}
		for _, expr := range rd.Patterns {
			if err := ua.CheckPattern(expr); err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, errors.Join(ua.ErrInvalidPattern, err))
			}
			table = append(table, ua.Rule{Pattern: re, Template: tmpl})
		}
	}
	return table, nil
}

func buildTemplate(docs []bindingDoc) (ua.Template, error) {
	tmpl := make(ua.Template, 0, len(docs))
	for _, bd := range docs {
		field := ua.Field(bd.Field)
		if !field.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, bd.Field)
		}

		var src ua.Source
		switch {
		case bd.Group != nil && bd.Value != nil:
			return nil, fmt.Errorf("%w: field %q", ErrAmbiguousSource, bd.Field)
		case bd.Group != nil:
			if *bd.Group < 1 {
				return nil, fmt.Errorf("%w: field %q group %d", ErrInvalidGroup, bd.Field, *bd.Group)
			}
			src = ua.Group(*bd.Group)
		case bd.Value != nil:
			src = ua.Literal(*bd.Value)
		default:
			src = ua.Undefined()
		}

		transforms := make([]ua.Transform, 0, len(bd.Transforms))
		for _, td := range bd.Transforms {
			tr, err := buildTransform(td)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", bd.Field, err)
			}
			transforms = append(transforms, tr)
		}
		tmpl = append(tmpl, ua.Bind(field, src, transforms...))
	}
	return tmpl, nil
}

var namedTransforms = map[string]ua.Transform{
	"lower":   ua.Lower,
	"upper":   ua.Upper,
	"title":   ua.Title,
	"version": ua.Version,
}

func buildTransform(td transformDoc) (ua.Transform, error) {
	switch {
	case td.Name != "":
		tr, ok := namedTransforms[td.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, td.Name)
		}
		return tr, nil
	case td.Alias != nil:
		return ua.Alias(td.Alias), nil
	case td.Replace != nil:
		if err := ua.CheckPattern(td.Replace.Pattern); err != nil {
			return nil, err
		}
		re, err := regexp.Compile(td.Replace.Pattern)
		if err != nil {
			return nil, errors.Join(ua.ErrInvalidPattern, err)
		}
		with := td.Replace.With
		return func(s string) string { return re.ReplaceAllString(s, with) }, nil
	}
	return nil, ErrUnknownTransform
}
