package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/internal/service/queue"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// MessageSource is the part of the queue service the worker consumes
type MessageSource interface {
	ExportQueueURL() string
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// ObjectStore is the part of the S3 client the worker writes through
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NoteExport is the document uploaded for one export request
type NoteExport struct {
	TenantSlug  string        `json:"tenant_slug"`
	RequestedBy string        `json:"requested_by,omitempty"`
	RequestedAt time.Time     `json:"requested_at"`
	ExportedAt  time.Time     `json:"exported_at"`
	NoteCount   int           `json:"note_count"`
	Notes       []domain.Note `json:"notes"`
}

// ExportWorker drains the export queue and writes each tenant's notes to S3
type ExportWorker struct {
	queue        MessageSource
	repository   repository.Repository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	s3Client     ObjectStore
	s3Config     *config.S3Config
	now          func() time.Time

	cancel    context.CancelFunc
	waitGroup sync.WaitGroup
}

func NewExportWorker(
	queue MessageSource,
	repository repository.Repository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client ObjectStore,
	s3Config *config.S3Config,
) *ExportWorker {
	return &ExportWorker{
		queue:        queue,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		s3Client:     s3Client,
		s3Config:     s3Config,
		now:          time.Now,
	}
}

func (w *ExportWorker) Start(ctx context.Context) {
	w.logger.Info("Starting export workers...")

	ctx, w.cancel = context.WithCancel(ctx)
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(ctx, i)
	}
}

func (w *ExportWorker) Stop() {
	w.logger.Info("Stopping export workers...")
	if w.cancel != nil {
		w.cancel()
	}
	w.waitGroup.Wait()
	w.logger.Info("All export workers stopped")
}

func (w *ExportWorker) runWorker(ctx context.Context, workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Export worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Export worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(ctx); err != nil && ctx.Err() == nil {
				w.logger.Errorf("Export worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

// processMessages handles one batch. A message is deleted only after its
// export is stored; undecodable and foreign messages are dropped.
func (w *ExportWorker) processMessages(ctx context.Context) error {
	queueURL := w.queue.ExportQueueURL()

	messages, err := w.queue.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeExport || msg.Message.TenantSlug == "" {
			w.logger.Warn("Dropping unrecognised export message", logger.TenantSlug(msg.Message.TenantSlug))
		} else if err := w.exportTenant(ctx, msg.Message); err != nil {
			w.logger.Error("Failed to export notes", err, logger.TenantSlug(msg.Message.TenantSlug))
			continue
		}

		if err := w.queue.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Error("Failed to delete message", err)
		}
	}

	return nil
}

func (w *ExportWorker) exportTenant(ctx context.Context, msg queue.Message) error {
	notes, err := w.repository.Note().List(ctx, domain.NoteScope{TenantSlug: msg.TenantSlug})
	if err != nil {
		return fmt.Errorf("failed to load notes for tenant %s: %w", msg.TenantSlug, err)
	}

	exportedAt := w.now().UTC()
	doc := NoteExport{
		TenantSlug:  msg.TenantSlug,
		RequestedBy: msg.RequestedBy,
		RequestedAt: msg.Timestamp,
		ExportedAt:  exportedAt,
		NoteCount:   len(notes),
		Notes:       notes,
	}
	if doc.Notes == nil {
		doc.Notes = []domain.Note{}
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	key := w.s3Config.ExportKey(msg.TenantSlug, exportedAt)
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"tenant-slug": msg.TenantSlug,
			"exported-at": exportedAt.Format(time.RFC3339),
			"note-count":  strconv.Itoa(len(notes)),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload export to S3: %w", err)
	}

	w.logger.Info("Notes exported",
		logger.TenantSlug(msg.TenantSlug),
		logger.NoteCount(int64(len(notes))),
		logger.UserID(msg.RequestedBy))
	w.logger.Infof("Export stored at s3://%s/%s", w.s3Config.BucketName, key)
	return nil
}
