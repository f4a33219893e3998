package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
	"github.com/phrazzld/wellbeing-api/internal/platform/logger"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// PostgresJournalStore implements the store.JournalStore interface
// using a PostgreSQL database as the storage backend.
type PostgresJournalStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure PostgresJournalStore implements store.JournalStore interface
var _ store.JournalStore = (*PostgresJournalStore)(nil)

// NewPostgresJournalStore creates a new PostgreSQL implementation of the
// JournalStore interface.
func NewPostgresJournalStore(db *sql.DB, log *slog.Logger) *PostgresJournalStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresJournalStore{
		db:     db,
		logger: log.With(slog.String("component", "journal_store")),
	}
}

// GetOrCreate implements store.JournalStore.GetOrCreate
// The journal is created lazily on first access, inside a transaction so
// concurrent first accesses cannot produce two journals for one user.
func (s *PostgresJournalStore) GetOrCreate(
	ctx context.Context,
	ownerID uuid.UUID,
) (*domain.Journal, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	journal, err := s.getByOwner(ctx, s.db, ownerID)
	if err == nil {
		return journal, false, nil
	}
	if !errors.Is(err, store.ErrJournalNotFound) {
		return nil, false, err
	}

	created, err := domain.NewJournal(ownerID)
	if err != nil {
		return nil, false, err
	}

	txErr := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO journals (id, owner_id, created_at)
			VALUES ($1, $2, $3)
		`
		_, err := tx.ExecContext(ctx, query, created.ID, created.OwnerID, created.CreatedAt)
		return err
	})

	if txErr != nil {
		// A concurrent request may have created the journal first; the
		// unique constraint on owner_id turns that race into a re-read.
		if isUniqueViolation(txErr) {
			journal, err := s.getByOwner(ctx, s.db, ownerID)
			return journal, false, err
		}

		log.Error("failed to create journal",
			slog.String("error", txErr.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, false, txErr
	}

	log.Info("journal created lazily",
		slog.String("journal_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return created, true, nil
}

// getByOwner retrieves a journal by its owner.
// Returns store.ErrJournalNotFound if the owner has no journal yet.
func (s *PostgresJournalStore) getByOwner(
	ctx context.Context,
	db store.DBTX,
	ownerID uuid.UUID,
) (*domain.Journal, error) {
	query := `
		SELECT id, owner_id, created_at
		FROM journals
		WHERE owner_id = $1
	`

	var journal domain.Journal
	err := db.QueryRowContext(ctx, query, ownerID).Scan(
		&journal.ID,
		&journal.OwnerID,
		&journal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrJournalNotFound
		}
		return nil, err
	}

	return &journal, nil
}

// ListPages implements store.JournalStore.ListPages
func (s *PostgresJournalStore) ListPages(
	ctx context.Context,
	journalID uuid.UUID,
) ([]*domain.JournalPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, journal_id, date, body, created_at, updated_at
		FROM journal_pages
		WHERE journal_id = $1
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, journalID)
	if err != nil {
		log.Error("failed to list journal pages",
			slog.String("error", err.Error()),
			slog.String("journal_id", journalID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectPages(rows)
}

// CreatePage implements store.JournalStore.CreatePage
func (s *PostgresJournalStore) CreatePage(ctx context.Context, page *domain.JournalPage) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := page.Validate(); err != nil {
		log.Warn("journal page validation failed during create",
			slog.String("error", err.Error()),
			slog.String("page_id", page.ID.String()))
		return err
	}

	query := `
		INSERT INTO journal_pages (id, journal_id, date, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		page.ID,
		page.JournalID,
		page.Date,
		page.Body,
		page.CreatedAt,
		page.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrJournalNotFound
		}

		log.Error("failed to create journal page",
			slog.String("error", err.Error()),
			slog.String("page_id", page.ID.String()))
		return err
	}

	log.Info("journal page created successfully",
		slog.String("page_id", page.ID.String()),
		slog.String("journal_id", page.JournalID.String()))
	return nil
}

// GetPageByID implements store.JournalStore.GetPageByID
// Returns store.ErrPageNotFound if the page does not exist and
// store.ErrPageNotOwned if its journal belongs to another user.
func (s *PostgresJournalStore) GetPageByID(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*domain.JournalPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.journal_id, p.date, p.body, p.created_at, p.updated_at, j.owner_id
		FROM journal_pages p
		JOIN journals j ON j.id = p.journal_id
		WHERE p.id = $1
	`

	var page domain.JournalPage
	var pageOwnerID uuid.UUID
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&page.ID,
		&page.JournalID,
		&page.Date,
		&page.Body,
		&page.CreatedAt,
		&page.UpdatedAt,
		&pageOwnerID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("journal page not found", slog.String("page_id", id.String()))
			return nil, store.ErrPageNotFound
		}
		log.Error("failed to get journal page by ID",
			slog.String("error", err.Error()),
			slog.String("page_id", id.String()))
		return nil, err
	}

	if pageOwnerID != ownerID {
		log.Warn("journal page ownership check failed",
			slog.String("page_id", id.String()),
			slog.String("user_id", ownerID.String()))
		return nil, store.ErrPageNotOwned
	}

	return &page, nil
}

// UpdatePage implements store.JournalStore.UpdatePage
func (s *PostgresJournalStore) UpdatePage(
	ctx context.Context,
	ownerID, id uuid.UUID,
	update domain.PageUpdate,
) (*domain.JournalPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, err := s.GetPageByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := page.Apply(update); err != nil {
		log.Warn("journal page validation failed during update",
			slog.String("error", err.Error()),
			slog.String("page_id", id.String()))
		return nil, err
	}

	query := `
		UPDATE journal_pages
		SET date = $1, body = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, page.Date, page.Body, page.UpdatedAt, id)
	if err != nil {
		log.Error("failed to update journal page",
			slog.String("error", err.Error()),
			slog.String("page_id", id.String()))
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		log.Debug("journal page not found for update",
			slog.String("page_id", id.String()))
		return nil, store.ErrPageNotFound
	}

	log.Info("journal page updated successfully",
		slog.String("page_id", id.String()))
	return page, nil
}

// DeletePage implements store.JournalStore.DeletePage
// A repeated delete of the same ID reports store.ErrPageNotFound.
func (s *PostgresJournalStore) DeletePage(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetPageByID(ctx, ownerID, id); err != nil {
		return err
	}

	query := `DELETE FROM journal_pages WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete journal page",
			slog.String("error", err.Error()),
			slog.String("page_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPageNotFound
	}

	log.Info("journal page deleted successfully",
		slog.String("page_id", id.String()))
	return nil
}

// SearchPages implements store.JournalStore.SearchPages
// Substring match only, no ranking.
func (s *PostgresJournalStore) SearchPages(
	ctx context.Context,
	ownerID uuid.UUID,
	query string,
) ([]*domain.JournalPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sqlQuery := `
		SELECT p.id, p.journal_id, p.date, p.body, p.created_at, p.updated_at
		FROM journal_pages p
		JOIN journals j ON j.id = p.journal_id
		WHERE j.owner_id = $1 AND p.body ILIKE '%' || $2 || '%'
		ORDER BY p.date DESC
	`

	rows, err := s.db.QueryContext(ctx, sqlQuery, ownerID, query)
	if err != nil {
		log.Error("failed to search journal pages",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectPages(rows)
}

// collectPages scans all rows into journal pages.
func collectPages(rows *sql.Rows) ([]*domain.JournalPage, error) {
	pages := make([]*domain.JournalPage, 0)
	for rows.Next() {
		var page domain.JournalPage
		err := rows.Scan(
			&page.ID,
			&page.JournalID,
			&page.Date,
			&page.Body,
			&page.CreatedAt,
			&page.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}
