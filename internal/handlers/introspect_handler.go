package handlers

import (
	"net/http"
	"strings"

	"helloworld-api/internal/middleware"
	"helloworld-api/internal/models"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/gin-gonic/gin"
)

// IntrospectHandler echoes request metadata
type IntrospectHandler struct {
	stage string
}

// NewIntrospectHandler creates a new introspection handler
func NewIntrospectHandler(stage string) *IntrospectHandler {
	return &IntrospectHandler{stage: stage}
}

// @Summary Describe the incoming request
// @Tags introspect
// @Produce json
// @Success 200 {object} models.RequestIntrospection
// @Router /introspect [get]
func (h *IntrospectHandler) Introspect(c *gin.Context) {
	c.JSON(http.StatusOK, h.Describe(c))
}

// Describe builds the introspection view of the request in c.
// When the request arrived through API Gateway its request context
// replaces what can be derived locally.
func (h *IntrospectHandler) Describe(c *gin.Context) models.RequestIntrospection {
	req := c.Request

	view := models.RequestIntrospection{
		Method:      req.Method,
		Path:        req.URL.Path,
		QueryParams: queryParams(req),
		Headers:     lowerHeaders(req.Header),
		URIParams:   uriParams(c.Params),
		Context: models.RequestContext{
			RequestID:    c.GetString(middleware.RequestIDKey),
			SourceIP:     c.ClientIP(),
			ResourcePath: resourcePath(c.FullPath()),
			HTTPMethod:   req.Method,
			Stage:        h.stage,
			UserAgent:    req.UserAgent(),
			DomainName:   req.Host,
		},
	}

	ctx := req.Context()
	if rc, ok := core.GetAPIGatewayContextFromContext(ctx); ok {
		derived := view.Context.ResourcePath
		view.Context = models.RequestContext{
			RequestID:    rc.RequestID,
			SourceIP:     rc.Identity.SourceIP,
			ResourcePath: rc.ResourcePath,
			HTTPMethod:   rc.HTTPMethod,
			Stage:        rc.Stage,
			UserAgent:    rc.Identity.UserAgent,
			DomainName:   rc.DomainName,
			APIID:        rc.APIID,
			AccountID:    rc.AccountID,
		}
		if view.Context.ResourcePath == "" {
			view.Context.ResourcePath = derived
		}
		if lc, ok := core.GetRuntimeContextFromContext(ctx); ok && lc != nil {
			view.Context.Extra = map[string]string{
				"aws_request_id":       lc.AwsRequestID,
				"invoked_function_arn": lc.InvokedFunctionArn,
			}
		}
	}
	if vars, ok := core.GetStageVarsFromContext(ctx); ok && len(vars) > 0 {
		view.StageVars = vars
	}

	return view
}

// queryParams keeps the first value of each key; nil when there is no query
func queryParams(req *http.Request) map[string]string {
	values := req.URL.Query()
	if len(values) == 0 {
		return nil
	}
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// lowerHeaders lower-cases header names and joins repeated values with commas
func lowerHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for k, v := range header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}
	return headers
}

func uriParams(params gin.Params) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for _, p := range params {
		out[p.Key] = p.Value
	}
	return out
}

// resourcePath rewrites gin's ":name" segments to the "{name}" form
func resourcePath(fullPath string) string {
	segments := strings.Split(fullPath, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
