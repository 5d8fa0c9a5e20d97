package models

// OriginAllowList is an immutable set of origins allowed to read cross-origin responses.
// Matching is exact: no scheme, host, port or trailing slash normalization.
type OriginAllowList struct {
	origins map[string]struct{}
}

// DefaultAllowedOrigins returns the built-in allow-list entries
func DefaultAllowedOrigins() []string {
	return []string{
		"http://allowed1.example.com",
		"http://allowed2.example.com",
	}
}

// NewOriginAllowList creates an allow-list from the given origins
func NewOriginAllowList(origins []string) *OriginAllowList {
	set := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		set[o] = struct{}{}
	}
	return &OriginAllowList{origins: set}
}

// Contains reports whether origin is allowed
func (l *OriginAllowList) Contains(origin string) bool {
	_, ok := l.origins[origin]
	return ok
}

// OriginDecision is the outcome of checking an origin against the allow-list
type OriginDecision struct {
	Origin  string
	Allowed bool
}

// Headers returns the response headers the decision requires
func (d OriginDecision) Headers() map[string]string {
	if !d.Allowed {
		return nil
	}
	return map[string]string{"Access-Control-Allow-Origin": d.Origin}
}

// Body returns the plain-text response body for the decision
func (d OriginDecision) Body() string {
	if d.Allowed {
		return "You sent a whitelisted origin!\n"
	}
	return "The origin you sent has not been whitelisted: " + d.Origin + "\n"
}
