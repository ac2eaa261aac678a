package finetune

import (
	"context"
	"fmt"
	"time"

	"github.com/harisaicharan3/openaictl/internal/provider"
)

// DefaultPollInterval matches the original tool's 2-second file status poll.
const DefaultPollInterval = 2 * time.Second

// WaitForFileProcessed polls the uploaded file until its status reaches
// "processed". Status "error" is terminal. onPoll, when non-nil, receives
// each intermediate status.
func WaitForFileProcessed(ctx context.Context, fp provider.FileProvider, fileID string, interval time.Duration, onPoll func(status string)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	for {
		f, err := fp.RetrieveFile(ctx, fileID)
		if err != nil {
			return err
		}
		switch f.Status {
		case "processed":
			return nil
		case "error":
			return fmt.Errorf("file %s processing failed", fileID)
		}
		if onPoll != nil {
			onPoll(f.Status)
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
