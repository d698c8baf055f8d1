/*
Package cssom provides a minimal CSS object model for inspecting scoped styles.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
We do not need a styling engine, but we do want to know which elements of
a document a stylesheet fragment will apply to. Stylesheets are therefore
reduced to their rules, and rules to their selectors and declarations.
Matching rules against a document is done with the selector engine of
https://godoc.org/github.com/andybalholm/cascadia.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kremling.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("kremling.cssom")
}
