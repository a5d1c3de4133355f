// Package workflows holds Temporal workflows for out-of-band list maintenance.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/skyhoard/pkg/logger"
	"github.com/ghuser/skyhoard/services/lists/domain/repositories"
)

const (
	// TaskQueue is the Temporal task queue served by cmd/worker.
	TaskQueue = "skyhoard-lists"

	// AuditWorkflowID is fixed so the cron schedule is started at most once.
	AuditWorkflowID = "aggregate-audit"

	// AuditCronSchedule runs the audit at the top of every hour.
	AuditCronSchedule = "0 * * * *"
)

// AuditResult is the outcome of one audit run.
type AuditResult struct {
	Drifted int
}

// AuditActivities holds the dependencies of the audit workflow's activities.
type AuditActivities struct {
	Repo repositories.ListRepository
	Log  logger.Logger
}

// CheckAggregateDrift re-derives every aggregate item quantity from its
// contributing regular items and logs each mismatch. Aggregate sync runs in
// the mutation transaction, so any drift found here is a bug or manual data
// edit, not a timing artifact.
func (a *AuditActivities) CheckAggregateDrift(ctx context.Context) (AuditResult, error) {
	rows, err := a.Repo.AggregateDrift(ctx)
	if err != nil {
		return AuditResult{}, err
	}
	for _, row := range rows {
		a.Log.ErrorContext(ctx, "aggregate quantity drift detected",
			"game_id", row.GameID,
			"family", row.Family,
			"description", row.Description,
			"aggregate_quantity", row.AggregateQuantity,
			"regular_quantity", row.RegularQuantity,
		)
	}
	return AuditResult{Drifted: len(rows)}, nil
}

// AggregateAuditWorkflow is the hourly cron workflow verifying that every
// aggregate item's quantity still equals the sum of its regular contributors.
func AggregateAuditWorkflow(ctx workflow.Context) (AuditResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var result AuditResult
	var a *AuditActivities
	if err := workflow.ExecuteActivity(ctx, a.CheckAggregateDrift).Get(ctx, &result); err != nil {
		return AuditResult{}, err
	}

	log := workflow.GetLogger(ctx)
	if result.Drifted > 0 {
		log.Warn("aggregate audit found drifted items", "drifted", result.Drifted)
	} else {
		log.Info("aggregate audit clean")
	}
	return result, nil
}
