package main

import (
	"helloworld-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	// The container is built on the first invocation and kept for warm ones
	awslambda.Start(lambda.GetConnectionManager().Handle)
}
