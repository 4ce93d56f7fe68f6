package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// DigestResult summarizes one weekly digest run.
type DigestResult struct {
	Conversations int
	Delivered     int
}

// WeeklyDigestWorkflow sends every active conversation its mileage total
// for the week that just ended. Scheduled as a Temporal cron on Monday
// mornings; one failed delivery does not stop the rest.
func WeeklyDigestWorkflow(ctx workflow.Context) (DigestResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting weekly digest workflow")

	actOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, actOpts)

	var result DigestResult

	// Step 1: find conversations with mileage last week
	var conversations []int64
	if err := workflow.ExecuteActivity(ctx, "ListActiveConversations").Get(ctx, &conversations); err != nil {
		return result, err
	}
	result.Conversations = len(conversations)

	// Step 2: total and deliver, one conversation at a time
	for _, id := range conversations {
		var total float64
		if err := workflow.ExecuteActivity(ctx, "SumLastWeek", id).Get(ctx, &total); err != nil {
			logger.Warn("sum failed, skipping conversation", "conversation_id", id, "error", err)
			continue
		}

		if err := workflow.ExecuteActivity(ctx, "SendDigest", id, total).Get(ctx, nil); err != nil {
			logger.Warn("digest delivery failed", "conversation_id", id, "error", err)
			continue
		}
		result.Delivered++
	}

	logger.Info("Weekly digest complete",
		"conversations", result.Conversations, "delivered", result.Delivered)
	return result, nil
}
