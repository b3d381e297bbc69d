package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/rafaelpontes/focushub/internal/container"
	"github.com/rafaelpontes/focushub/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:           c.UserContainer.Handler,
		ProjectHandler:        c.ProjectContainer.Handler,
		TaskHandler:           c.TaskContainer.Handler,
		CalendarHandler:       c.CalendarContainer.Handler,
		TimeEntryHandler:      c.TimeEntryContainer.Handler,
		CycleHandler:          c.CycleContainer.Handler,
		DashboardHandler:      c.DashboardContainer.Handler,
		GoogleCalendarHandler: c.GoogleCalendarContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
