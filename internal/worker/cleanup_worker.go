package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/capitalizeai/scoring-api/internal/config"
	"github.com/capitalizeai/scoring-api/internal/repository"
	"github.com/capitalizeai/scoring-api/internal/service/queue"
	"github.com/capitalizeai/scoring-api/pkg/logger"
)

type CleanupWorker struct {
	sqsService   *queue.SQSService
	repository   repository.PostgresRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewCleanupWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *CleanupWorker {
	return &CleanupWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *CleanupWorker) Start() {
	w.logger.Info("Starting cleanup workers...")

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *CleanupWorker) Stop() {
	w.logger.Info("Stopping cleanup workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All cleanup workers stopped")
}

func (w *CleanupWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Cleanup worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Cleanup worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Cleanup worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *CleanupWorker) processMessages(ctx context.Context) error {
	// Get cleanup queue URL from config
	config := config.DefaultSQSConfig()
	cleanupQueueURL := config.CleanupQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, cleanupQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type == queue.MessageTypeCleanup {
			if err := w.processCleanupMessage(ctx, msg.Message); err != nil {
				w.logger.Errorf("Failed to process cleanup message: %v", err)
				continue
			}

			// Only delete the message if processing was successful
			if err := w.sqsService.DeleteMessage(ctx, cleanupQueueURL, msg.ReceiptHandle); err != nil {
				w.logger.Errorf("Failed to delete message: %v", err)
			}
		}
	}

	return nil
}

func (w *CleanupWorker) processCleanupMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing cleanup message for org %s (before: %s)",
		msg.OrgID, msg.BeforeDate.Format(time.RFC3339))

	// Pending requests past the cutoff will never complete; mark them expired
	expiredCount, err := w.repository.ScoringRequest().ExpirePendingBefore(ctx, msg.OrgID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to expire pending requests for org %s: %w", msg.OrgID, err)
	}

	// Delete the completed requests that were already archived to S3
	deletedCount, err := w.repository.ScoringRequest().DeleteCompletedBefore(ctx, msg.OrgID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to delete scoring requests for org %s: %w", msg.OrgID, err)
	}

	w.logger.Infof("Successfully expired %d and deleted %d scoring requests for org %s (before: %s)",
		expiredCount, deletedCount, msg.OrgID, msg.BeforeDate.Format(time.RFC3339))

	return nil
}
