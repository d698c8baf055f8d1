/*
Package scope defines the identifiers which tag elements belonging to one
block of scoped CSS.

A scope identifier is a pair of attribute name and attribute value, e.g.

    data-kremling="3"

Rewritten CSS refers to it through an attribute selector, clients put it
onto every element they want the styles to apply to.

For CSS which is rewritten at run time, the value is drawn from a Counter.
Counter values are handed out in strictly increasing order and are never
re-used while the process runs, even after the styles they belonged to have
been dropped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scope
