package models

// RequestContext describes where a request came from
type RequestContext struct {
	RequestID    string            `json:"request_id,omitempty"`
	SourceIP     string            `json:"source_ip,omitempty"`
	ResourcePath string            `json:"resource_path,omitempty"`
	HTTPMethod   string            `json:"http_method,omitempty"`
	Stage        string            `json:"stage,omitempty"`
	UserAgent    string            `json:"user_agent,omitempty"`
	DomainName   string            `json:"domain_name,omitempty"`
	APIID        string            `json:"api_id,omitempty"`
	AccountID    string            `json:"account_id,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// RequestIntrospection is the diagnostic view of an incoming request
// as exposed by the routing layer.
type RequestIntrospection struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	QueryParams map[string]string `json:"query_params"`
	Headers     map[string]string `json:"headers"`
	URIParams   map[string]string `json:"uri_params"`
	Context     RequestContext    `json:"context"`
	StageVars   map[string]string `json:"stage_vars"`
}

