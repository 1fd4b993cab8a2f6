package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	rabbitOnce  sync.Once
	rabbitURL   string
	rabbitError error
)

// SetupTestRabbitMQ starts a shared RabbitMQ container and returns its AMQP
// URL. Skipped under -short.
func SetupTestRabbitMQ(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("testhelper: skipping RabbitMQ integration test in -short mode")
	}

	rabbitOnce.Do(func() {
		rabbitURL, rabbitError = startRabbitMQ()
	})
	if rabbitError != nil {
		t.Fatalf("testhelper: failed to setup test rabbitmq: %v", rabbitError)
	}
	return rabbitURL
}

func startRabbitMQ() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5672")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), nil
}
