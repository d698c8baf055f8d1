/*
Package dom holds the HTML documents scoped styles are applied to.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A Document wraps an HTML parse tree of package golang.org/x/net/html.
Its head receives the stylesheet fragments of a style registry: HeadSink
implements registry.Sink by appending <style> elements to <head> and
detaching them again on removal. Every inserted element carries an
attribute naming its scope, e.g.

    <style type="text/css" data-kremling-scope="data-kremling=0">…</style>

Elements are tagged with a scope identifier by Scope or ScopeChildren.
Documents may be queried with CSS selectors, using the selector engine of
https://godoc.org/github.com/andybalholm/cascadia. This allows checking
which elements a rewritten rule will apply to.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'kremling.dom'
func tracer() tracing.Trace {
	return tracing.Select("kremling.dom")
}
