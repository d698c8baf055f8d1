/*
Package rewrite scopes CSS by rewriting '&'-anchored selectors.

Authors write CSS with an '&' placeholder standing for "this component's
instance":

    & .someRule, .wow {
        background-color: red;
    }

Transform replaces every such rule group header by attribute-qualified
selectors for a given scope selector:

    [data-kremling="0"] .someRule, [data-kremling="0"].someRule, .wow {
        background-color: red;
    }

Each scoped member yields two alternatives, one matching descendants of a
scoped element and one matching the scoped element itself. Members without
an '&' are passed through. Everything outside of rule group headers,
including rule bodies, is left untouched byte for byte.

This is not a CSS parser. Only top-level, comma-separated selector lists
containing '&' members are understood.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kremling.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("kremling.rewrite")
}
