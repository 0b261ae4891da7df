package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	db *sql.DB
}

var _ driven.HistoryStore = (*historyStore)(nil)

const selectConversion = `
	SELECT id, command, input, dialect, version, message_type, charset, stage, success, error, created_at
	FROM conversions`

// Save stores a record, assigning an ID when it has none.
func (s *historyStore) Save(ctx context.Context, record domain.ConversionRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions
			(id, command, input, dialect, version, message_type, charset, stage, success, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		record.ID,
		string(record.Command),
		record.Input,
		string(record.Dialect),
		record.Version,
		record.MessageType,
		string(record.Charset),
		string(record.Stage),
		record.Success,
		record.Error,
		record.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving conversion %s: %w", record.ID, err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.ConversionRecord, error) {
	row := s.db.QueryRowContext(ctx, selectConversion+" WHERE id = ?", id)

	record, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting conversion %s: %w", id, err)
	}
	return record, nil
}

// List returns up to limit records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	query := selectConversion + " ORDER BY created_at DESC, seq DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing conversions: %w", err)
	}
	defer rows.Close()

	var records []domain.ConversionRecord
	for rows.Next() {
		record, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Clear removes all records.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM conversions"); err != nil {
		return fmt.Errorf("clearing conversions: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (*domain.ConversionRecord, error) {
	var (
		record                           domain.ConversionRecord
		command, dialect, charset, stage string
		createdAt                        int64
	)
	err := row.Scan(
		&record.ID,
		&command,
		&record.Input,
		&dialect,
		&record.Version,
		&record.MessageType,
		&charset,
		&stage,
		&record.Success,
		&record.Error,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Command = domain.Command(command)
	record.Dialect = domain.Dialect(dialect)
	record.Charset = domain.Charset(charset)
	record.Stage = domain.Stage(stage)
	record.CreatedAt = time.Unix(0, createdAt)
	return &record, nil
}
