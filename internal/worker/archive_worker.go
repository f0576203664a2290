package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/capitalizeai/scoring-api/internal/config"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
	"github.com/capitalizeai/scoring-api/internal/service/queue"
	"github.com/capitalizeai/scoring-api/pkg/logger"
)

type ArchiveWorker struct {
	sqsService   *queue.SQSService
	repository   repository.PostgresRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
}

func NewArchiveWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *ArchiveWorker {
	return &ArchiveWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
	}
}

func (w *ArchiveWorker) Start() {
	w.logger.Info("Starting archive workers...")

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ArchiveWorker) Stop() {
	w.logger.Info("Stopping archive workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All archive workers stopped")
}

func (w *ArchiveWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Archive worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Archive worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Archive worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ArchiveWorker) processMessages(ctx context.Context) error {
	// Get archive queue URL from config
	config := config.DefaultSQSConfig()
	archiveQueueURL := config.ArchiveQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, archiveQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type == queue.MessageTypeArchive {
			if err := w.processArchiveMessage(ctx, msg.Message); err != nil {
				w.logger.Errorf("Failed to process archive message: %v", err)
				continue
			}

			// Only delete the message if processing was successful
			if err := w.sqsService.DeleteMessage(ctx, archiveQueueURL, msg.ReceiptHandle); err != nil {
				w.logger.Errorf("Failed to delete message: %v", err)
			}
		}
	}

	return nil
}

func (w *ArchiveWorker) processArchiveMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing archive message for org %s (before: %s)",
		msg.OrgID, msg.BeforeDate.Format(time.RFC3339))

	requests, err := w.repository.ScoringRequest().ListCompletedBefore(ctx, msg.OrgID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to fetch scoring requests for archival for org %s: %w", msg.OrgID, err)
	}

	if len(requests) == 0 {
		w.logger.Infof("No scoring requests found for archival for org %s before %s", msg.OrgID, msg.BeforeDate.Format(time.RFC3339))
		// Still enqueue cleanup message even if no requests found
		return w.enqueueCleanupMessage(ctx, msg.OrgID, msg.BeforeDate)
	}

	w.logger.Infof("Found %d scoring requests to archive for org %s before %s", len(requests), msg.OrgID, msg.BeforeDate.Format(time.RFC3339))

	// Archive the requests, scores included, to S3
	if err := w.archiveRequestsToS3(ctx, msg.OrgID, requests, msg.BeforeDate); err != nil {
		return fmt.Errorf("failed to archive scoring requests for org %s: %w", msg.OrgID, err)
	}

	w.logger.Infof("Successfully archived %d scoring requests for org %s to S3", len(requests), msg.OrgID)

	// Enqueue cleanup message after successful archival
	return w.enqueueCleanupMessage(ctx, msg.OrgID, msg.BeforeDate)
}

func (w *ArchiveWorker) archiveRequestsToS3(ctx context.Context, orgID string, requests []domain.ScoringRequest, beforeDate time.Time) error {
	// Create S3 key with timestamp and org
	s3Key := fmt.Sprintf("scoring-requests/%s/scoring_requests_%s_before_%s.json",
		orgID,
		orgID,
		beforeDate.Format("2006-01-02_15-04-05"))

	// Prepare archive data
	archiveData := map[string]interface{}{
		"org_id":        orgID,
		"before_date":   beforeDate,
		"archived_at":   time.Now(),
		"request_count": len(requests),
		"requests":      requests,
	}

	// Convert to JSON
	jsonData, err := json.MarshalIndent(archiveData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scoring requests to JSON: %w", err)
	}

	// Upload to S3
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &[]string{"application/json"}[0],
		Metadata: map[string]string{
			"org-id":        orgID,
			"archived-at":   time.Now().Format(time.RFC3339),
			"request-count": fmt.Sprintf("%d", len(requests)),
			"before-date":   beforeDate.Format(time.RFC3339),
		},
	})

	if err != nil {
		return fmt.Errorf("failed to upload archive to S3: %w", err)
	}

	w.logger.Infof("Successfully uploaded archive to S3: s3://%s/%s", w.s3Config.BucketName, s3Key)
	return nil
}

func (w *ArchiveWorker) enqueueCleanupMessage(ctx context.Context, orgID string, beforeDate time.Time) error {
	if err := w.sqsService.SendCleanupMessage(ctx, orgID, beforeDate); err != nil {
		return fmt.Errorf("failed to enqueue cleanup message: %w", err)
	}

	w.logger.Infof("Successfully enqueued cleanup message for org %s", orgID)
	return nil
}
