package rewrite

import (
	"strings"
)

// Anchor is the placeholder character for a scoped element.
const Anchor = '&'

// Transform rewrites every '&'-anchored rule group header of css into
// selectors qualified by scopeSelector. scopeSelector usually is an
// attribute selector like
//
//     [data-kremling="0"]
//
// A header needs no blank after the '&': "&.active {" and "&:hover {" are
// rewritten like "& .active {" and "& :hover {".
//
// CSS without any '&' is returned unchanged. Transform is a pure function.
// Re-applying it to its own output is safe as long as scopeSelector does not
// contain an '&'.
func Transform(css string, scopeSelector string) string {
	if !HasAnchor(css) {
		return css
	}
	var out strings.Builder
	out.Grow(len(css) + 4*len(scopeSelector))
	copied := 0 // css[:copied] has been written to out
	groups := 0
	s := scanner{css: css}
	for {
		g, ok := s.next()
		if !ok {
			break
		}
		out.WriteString(css[copied:g.start])
		out.WriteString(g.rewrite(scopeSelector))
		copied = g.end
		groups++
	}
	out.WriteString(css[copied:])
	tracer().Debugf("rewrite: %d rule group(s) scoped with %s", groups, scopeSelector)
	return out.String()
}

// HasAnchor reports whether css contains any '&'.
func HasAnchor(css string) bool {
	return strings.IndexByte(css, Anchor) >= 0
}

// FirstRule returns the selector text in front of the first '{' of css,
// trimmed. If css does not contain a '{', the trimmed css is returned.
func FirstRule(css string) string {
	if i := strings.IndexByte(css, '{'); i >= 0 {
		css = css[:i]
	}
	return strings.TrimSpace(css)
}

// --- Rule groups -----------------------------------------------------------

// group is a rule group header css[start:end]. It starts with an '&' and
// ends with the '{' opening the rule body.
type group struct {
	start, end int
	header     string
}

// members splits the header into its comma separated selectors.
// There is no nesting in the grammar we support, so every comma separates.
func (g group) members() []string {
	return strings.Split(g.header, ",")
}

func (g group) rewrite(scopeSelector string) string {
	members := g.members()
	alternatives := make([]string, 0, 2*len(members))
	for _, m := range members {
		alternatives = append(alternatives, scopeMember(m, scopeSelector)...)
	}
	return strings.Join(alternatives, ", ") + " {"
}

// scopeMember returns the selector alternatives for one member of a rule
// group. Global members are returned as-is, scoped members produce a pair.
func scopeMember(member string, scopeSelector string) []string {
	member = strings.TrimSpace(member)
	if !HasAnchor(member) {
		return []string{strings.TrimSpace(strings.TrimSuffix(member, "{"))}
	}
	tail := strings.TrimSpace(strings.TrimSuffix(member, "{"))
	tail = strings.TrimSpace(strings.TrimPrefix(tail, string(Anchor)))
	switch {
	case tail == "":
		return []string{scopeSelector}
	case isAttributeStyle(tail):
		// the scope attribute may sit on an ancestor or on the element itself
		return []string{scopeSelector + " " + tail, scopeSelector + tail}
	default:
		// "[attr]div" is invalid, "div[attr]" is not
		return []string{scopeSelector + " " + tail, tail + scopeSelector}
	}
}

// isAttributeStyle is true for selectors starting with a class or id
// selector, i.e. '.' or '#' followed by a word character.
func isAttributeStyle(tail string) bool {
	if len(tail) < 2 || (tail[0] != '.' && tail[0] != '#') {
		return false
	}
	return isWordChar(tail[1])
}

func isWordChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// --- Scanner ---------------------------------------------------------------

// scanner finds rule group headers: an '&' followed by at least one character
// which is neither '{' nor '}', terminated by '{'. Headers do not overlap;
// after a header has been found, scanning continues behind its '{'.
type scanner struct {
	css string
	pos int
}

func (s *scanner) next() (group, bool) {
	for s.pos < len(s.css) {
		i := strings.IndexByte(s.css[s.pos:], Anchor)
		if i < 0 {
			s.pos = len(s.css)
			break
		}
		start := s.pos + i
		end, resume := s.headerEnd(start)
		if end < 0 {
			s.pos = resume
			continue
		}
		s.pos = end
		return group{start: start, end: end, header: s.css[start:end]}, true
	}
	return group{}, false
}

// headerEnd returns the position behind the '{' terminating a header which
// starts at start, or -1 and the position to resume scanning at.
func (s *scanner) headerEnd(start int) (int, int) {
	for j := start + 1; j < len(s.css); j++ {
		switch s.css[j] {
		case '{':
			if j == start+1 { // "&{" has no selector tail
				return -1, j
			}
			return j + 1, 0
		case '}':
			// no '&' in between can reach a '{' either
			return -1, j + 1
		}
	}
	return -1, len(s.css)
}
