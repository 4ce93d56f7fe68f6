package main

import (
	"context"
	"log"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/okruta/routelog/internal/adapters/postgres"
	"github.com/okruta/routelog/internal/adapters/telegram"
	"github.com/okruta/routelog/internal/core/usecases"
	"github.com/okruta/routelog/internal/pkg/config"
	"github.com/okruta/routelog/internal/workflows"
)

func main() {
	cfg, err := config.Load("routelog-digest")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	recordRepo := postgres.NewRouteRecordRepo(db)
	reportSvc := usecases.NewReportService(recordRepo, nil, nil)
	messenger := telegram.NewSender(cfg.Telegram.Token, cfg.Telegram.APIBase)

	// Connect to Temporal
	c, err := client.Dial(client.Options{
		HostPort: cfg.Temporal.HostPort,
	})
	if err != nil {
		log.Fatalf("temporal client: %v", err)
	}
	defer c.Close()

	w := worker.New(c, cfg.Temporal.TaskQueue, worker.Options{})

	// Register workflow & activities
	w.RegisterWorkflow(workflows.WeeklyDigestWorkflow)
	w.RegisterActivity(&workflows.DigestActivities{
		Reports:   reportSvc,
		Messenger: messenger,
	})

	// Every Monday at 06:00 UTC, right after the reported week closes.
	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err = c.ExecuteWorkflow(startCtx, client.StartWorkflowOptions{
		ID:           "weekly-digest",
		TaskQueue:    cfg.Temporal.TaskQueue,
		CronSchedule: "0 6 * * 1",
	}, workflows.WeeklyDigestWorkflow)
	if err != nil {
		log.Printf("start cron workflow: %v", err)
	}

	log.Println("digest worker started")
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("worker: %v", err)
	}
}
