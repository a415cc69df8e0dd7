package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/vicinato-api/internal/container"
)

func main() {
	c := container.New()
	adapter := chiadapter.New(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
