package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
	"github.com/kingrain94/rent-dashboard/pkg/utils"
)

var statementHeader = []string{"date", "tenant", "type", "category", "amount"}

// StatementKeyFunc names the stored statement of an owner for a month.
type StatementKeyFunc func(ownerID string, month time.Time) string

// StatementService exports an owner's monthly ledger as a CSV file.
type StatementService struct {
	repo     repository.PostgresRepository
	store    repository.StatementStore
	queue    QueueService
	keyFor   StatementKeyFunc
	location *time.Location
	logger   *logger.Logger
}

func NewStatementService(
	repo repository.PostgresRepository,
	store repository.StatementStore,
	queue QueueService,
	keyFor StatementKeyFunc,
	location *time.Location,
	logger *logger.Logger,
) *StatementService {
	if location == nil {
		location = time.UTC
	}
	return &StatementService{
		repo:     repo,
		store:    store,
		queue:    queue,
		keyFor:   keyFor,
		location: location,
		logger:   logger,
	}
}

// ParseMonth validates a YYYY-MM value in the service location.
func (s *StatementService) ParseMonth(value string) (time.Time, error) {
	month, err := utils.ParseMonth(value, s.location)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "month", Message: err.Error()}
	}
	return month, nil
}

// ScheduleExport queues the statement of ownerID for month.
func (s *StatementService) ScheduleExport(ctx context.Context, ownerID, month string) (time.Time, error) {
	start, err := s.ParseMonth(month)
	if err != nil {
		return time.Time{}, err
	}

	if err := s.queue.SendStatementMessage(ctx, ownerID, start); err != nil {
		s.logger.Error("Failed to queue statement export", err, zap.String("user_id", ownerID))
		return time.Time{}, fmt.Errorf("failed to queue statement export: %w", err)
	}
	return start, nil
}

// Export builds the statement of ownerID for the month starting at month and stores it.
func (s *StatementService) Export(ctx context.Context, ownerID string, month time.Time) (string, error) {
	start, end := utils.MonthBounds(month.In(s.location))

	entries, err := s.repo.Finance().LedgerEntriesBetween(ctx, ownerID, start, end)
	if err != nil {
		return "", storeErr("list_ledger_entries", err)
	}

	body, err := s.BuildCSV(entries)
	if err != nil {
		return "", err
	}

	key := s.keyFor(ownerID, start)
	metadata := map[string]string{
		"owner-id": ownerID,
		"month":    start.Format("2006-01"),
		"entries":  fmt.Sprintf("%d", len(entries)),
	}
	if err := s.store.Put(ctx, key, body, metadata); err != nil {
		return "", err
	}

	s.logger.Info("Statement exported",
		zap.String("user_id", ownerID),
		zap.String("key", key),
		zap.Int("entries", len(entries)))
	return key, nil
}

// DownloadURL returns a temporary link to the stored statement of month.
func (s *StatementService) DownloadURL(ctx context.Context, ownerID, month string) (string, error) {
	start, err := s.ParseMonth(month)
	if err != nil {
		return "", err
	}

	url, err := s.store.PresignGet(ctx, s.keyFor(ownerID, start))
	if err != nil {
		s.logger.Error("Failed to presign statement", err, zap.String("user_id", ownerID))
		return "", err
	}
	return url, nil
}

// BuildCSV renders ledger entries as CSV rows, one per entry, amounts signed
// the same way as the activity feed.
func (s *StatementService) BuildCSV(entries []domain.LedgerEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(statementHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, entry := range entries {
		row := activityRow(entry, s.location)
		amount := row.Amount.Abs().StringFixed(2)
		if row.Type == domain.LedgerPayment {
			amount = "+" + amount
		} else {
			amount = "-" + amount
		}

		record := []string{
			row.CreatedAt.Format("2006-01-02"),
			row.TenantName,
			string(row.Type),
			row.Category,
			amount,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
