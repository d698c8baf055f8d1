package registry

import (
	"fmt"
)

// Source is the input for Acquire: either raw CSS (type CSS) or a
// precompiled artifact (type Precompiled).
type Source interface {
	// Key is the exact string the registry caches the source under.
	Key() string
	isSource()
}

// CSS is raw CSS using '&' as a placeholder for the scoped element.
type CSS string

// Key returns the CSS verbatim.
func (c CSS) Key() string { return string(c) }

func (c CSS) isSource() {}

// Precompiled is CSS which has been scoped by a build step. Its Styles
// are inserted verbatim, without any rewriting.
type Precompiled struct {
	ID        string // scope attribute value
	Styles    string // scoped CSS
	Namespace string // scope attribute name; optional
}

// Key returns the styles verbatim.
func (p Precompiled) Key() string { return p.Styles }

func (p Precompiled) isSource() {}

// Validate checks that p carries an id. Empty styles are fine.
func (p Precompiled) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: precompiled styles need an id", ErrInvalidArtifact)
	}
	return nil
}

var _ Source = CSS("")
var _ Source = Precompiled{}

// SourceFrom converts a dynamically typed value into a Source.
// Accepted are strings (raw CSS), Source values, and maps with keys
// "id" and "styles" and an optional "namespace", all of them strings.
//
// Values of any other type result in ErrInvalidInput. Maps lacking a string
// id or a string styles entry result in ErrInvalidArtifact.
func SourceFrom(v interface{}) (Source, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: no css given", ErrInvalidInput)
	case string:
		return CSS(x), nil
	case CSS:
		return x, nil
	case Precompiled:
		return validated(x)
	case *Precompiled:
		if x == nil {
			return nil, fmt.Errorf("%w: nil artifact", ErrInvalidInput)
		}
		return validated(*x)
	case map[string]string:
		m := make(map[string]interface{}, len(x))
		for k, s := range x {
			m[k] = s
		}
		return artifactFromMap(m)
	case map[string]interface{}:
		return artifactFromMap(x)
	}
	return nil, fmt.Errorf("%w: expected css string or artifact, have %T", ErrInvalidInput, v)
}

func artifactFromMap(m map[string]interface{}) (Source, error) {
	id, ok := m["id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing string property \"id\"", ErrInvalidArtifact)
	}
	styles, ok := m["styles"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing string property \"styles\"", ErrInvalidArtifact)
	}
	p := Precompiled{ID: id, Styles: styles}
	if ns, found := m["namespace"]; found && ns != nil {
		if p.Namespace, ok = ns.(string); !ok {
			return nil, fmt.Errorf("%w: property \"namespace\" must be a string, is %T",
				ErrInvalidArtifact, ns)
		}
	}
	return validated(p)
}

// normalize unwraps pointers to precompiled artifacts and validates them.
func normalize(src Source) (Source, error) {
	switch x := src.(type) {
	case nil:
		return nil, fmt.Errorf("%w: no css given", ErrInvalidInput)
	case *Precompiled:
		if x == nil {
			return nil, fmt.Errorf("%w: nil artifact", ErrInvalidInput)
		}
		return validated(*x)
	case Precompiled:
		return validated(x)
	}
	return src, nil
}

func validated(p Precompiled) (Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
