package integration

import (
	"context"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PgvectorContainer runs a Postgres server with the pgvector extension available.
type PgvectorContainer struct {
	container *postgres.PostgresContainer
	DSN       string
}

// Start launches the container and waits until it accepts connections.
func (p *PgvectorContainer) Start(ctx context.Context) error {
	container, err := postgres.Run(ctx,
		"pgvector/pgvector:pg17",
		postgres.WithDatabase("docexplore"),
		postgres.WithUsername("docexplore"),
		postgres.WithPassword("docexplore"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute),
		),
	)
	if err != nil {
		return err
	}
	p.container = container

	p.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	return err
}

// Close terminates the container.
func (p *PgvectorContainer) Close() {
	if p.container == nil {
		return
	}
	cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if err := p.container.Terminate(cancelCtx); err != nil {
		log.Printf("failed to stop pgvector container: %v", err)
	}
}
