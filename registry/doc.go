/*
Package registry keeps exactly one stylesheet fragment per distinct CSS source.

Clients acquire scoped styles for a CSS source and release them when they
are done. The registry rewrites the CSS (see package rewrite), allocates a
scope identifier, and inserts the rendered text into a document sink on the
first acquire of a source. Subsequent acquires of a byte-identical source
share the fragment and its scope identifier; the fragment is removed from
the sink when the last client releases it.

    reg := registry.New(sink)
    a, err := reg.Acquire(registry.CSS("& .foo { color: red; }"), "")
    …
    // put a.Scope onto elements, e.g. data-kremling="0"
    …
    err = reg.Release(registry.CSS("& .foo { color: red; }"))

Sources are either raw CSS, which will be rewritten, or precompiled
artifacts, which were scoped by a build step and are inserted verbatim.

Per artifact, the life cycle is

    absent ──acquire──▶ present(1) ──acquire──▶ present(n+1)
       ▲                    │  ▲                     │
       └──────release───────┘  └───────release───────┘

Clients bound to a UI life cycle will find type Binding convenient, which
translates attach/update/detach notifications into acquire/release calls.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kremling.registry'.
func tracer() tracing.Trace {
	return tracing.Select("kremling.registry")
}
