package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

// HandlerFunc is the signature Lambda invokes for API Gateway proxy events
type HandlerFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHandler adapts a gin engine into a Lambda proxy handler. The gateway
// request context and the Lambda runtime context travel on the request's
// context, where introspection reads them back.
func NewHandler(engine *gin.Engine) HandlerFunc {
	adapter := ginadapter.New(engine)
	return adapter.ProxyWithContext
}
