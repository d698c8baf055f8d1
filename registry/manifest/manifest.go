/*
Package manifest reads precompiled CSS artifacts.

A build step may scope CSS ahead of time and hand the results to the
application, either as a YAML manifest

    artifacts:
      button:
        id: "15"
        namespace: donkey-kong
        styles: |
          [donkey-kong="15"] .foo, [donkey-kong="15"].foo { color: red; }
      footer: |
        & .copyright { font-size: small; }

or as single strings in k-format

    <id>||KREMLING||<namespace>||KREMLING||<styles>

Manifest entries may also be plain strings, which are taken as raw CSS.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package manifest

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/kremling/registry"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'kremling.manifest'.
func tracer() tracing.Trace {
	return tracing.Select("kremling.manifest")
}

// Separator separates the fields of a k-format string.
const Separator = "||KREMLING||"

// Manifest maps artifact names to sources.
type Manifest map[string]registry.Source

// Names returns the artifact names in alphabetical order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type document struct {
	Artifacts map[string]interface{} `yaml:"artifacts"`
}

// Read decodes a YAML manifest. Every entry is checked with
// registry.SourceFrom; all invalid entries are reported.
func Read(r io.Reader) (Manifest, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Manifest{}, nil
		}
		return nil, fmt.Errorf("cannot decode manifest: %w", err)
	}
	m := make(Manifest, len(doc.Artifacts))
	var errs error
	for name, v := range doc.Artifacts {
		src, err := registry.SourceFrom(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("manifest entry %q: %w", name, err))
			continue
		}
		m[name] = src
	}
	if errs != nil {
		tracer().Errorf("manifest: %v", errs)
		return nil, errs
	}
	tracer().Debugf("manifest: %d artifacts", len(m))
	return m, nil
}

// ParseK decodes a k-format string. If s does not consist of a non-empty
// id, namespace and styles, it is taken as raw CSS.
// The styles part extends to the end of s, even if it contains further
// separators.
func ParseK(s string) registry.Source {
	parts := strings.SplitN(s, Separator, 3)
	if len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != "" {
		return registry.Precompiled{ID: parts[0], Namespace: parts[1], Styles: parts[2]}
	}
	return registry.CSS(s)
}

// FormatK is the inverse of ParseK for precompiled artifacts.
func FormatK(p registry.Precompiled) string {
	return p.ID + Separator + p.Namespace + Separator + p.Styles
}

// Krem assembles a precompiled artifact from a namespace, an id, and the
// pieces of its styles.
func Krem(namespace, id string, styles ...string) registry.Precompiled {
	return registry.Precompiled{
		ID:        id,
		Namespace: namespace,
		Styles:    strings.Join(styles, ""),
	}
}
