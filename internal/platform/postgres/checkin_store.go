package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/wellbeing-api/internal/domain"
	"github.com/phrazzld/wellbeing-api/internal/platform/logger"
	"github.com/phrazzld/wellbeing-api/internal/store"
)

// PostgresCheckInStore implements the store.CheckInStore interface
// using a PostgreSQL database as the storage backend. Symptom and
// activity tag lists are persisted as jsonb so their order survives
// round trips.
type PostgresCheckInStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure PostgresCheckInStore implements store.CheckInStore interface
var _ store.CheckInStore = (*PostgresCheckInStore)(nil)

// NewPostgresCheckInStore creates a new PostgreSQL implementation of the
// CheckInStore interface.
func NewPostgresCheckInStore(db *sql.DB, log *slog.Logger) *PostgresCheckInStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCheckInStore{
		db:     db,
		logger: log.With(slog.String("component", "checkin_store")),
	}
}

// Create implements store.CheckInStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresCheckInStore) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkIn.Validate(); err != nil {
		log.Warn("check-in validation failed during create",
			slog.String("error", err.Error()),
			slog.String("checkin_id", checkIn.ID.String()))
		return err
	}

	symptoms, err := json.Marshal(checkIn.Symptoms)
	if err != nil {
		return fmt.Errorf("failed to encode symptoms: %w", err)
	}
	activities, err := json.Marshal(checkIn.Activities)
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		INSERT INTO check_ins (id, user_id, date, rating, symptoms, activities, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.Date,
		checkIn.Rating,
		symptoms,
		activities,
		nullableString(checkIn.Notes),
		checkIn.CreatedAt,
		checkIn.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during check-in creation",
				slog.String("checkin_id", checkIn.ID.String()),
				slog.String("user_id", checkIn.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, checkIn.UserID)
		}

		log.Error("failed to create check-in",
			slog.String("error", err.Error()),
			slog.String("checkin_id", checkIn.ID.String()))
		return err
	}

	log.Info("check-in created successfully",
		slog.String("checkin_id", checkIn.ID.String()),
		slog.String("user_id", checkIn.UserID.String()))
	return nil
}

// GetByID implements store.CheckInStore.GetByID
// Returns store.ErrCheckInNotFound if the check-in does not exist and
// store.ErrCheckInNotOwned if it belongs to another user.
func (s *PostgresCheckInStore) GetByID(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*domain.CheckIn, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, date, rating, symptoms, activities, notes, created_at, updated_at
		FROM check_ins
		WHERE id = $1
	`

	checkIn, err := scanCheckIn(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("check-in not found", slog.String("checkin_id", id.String()))
			return nil, store.ErrCheckInNotFound
		}
		log.Error("failed to get check-in by ID",
			slog.String("error", err.Error()),
			slog.String("checkin_id", id.String()))
		return nil, err
	}

	if checkIn.UserID != ownerID {
		log.Warn("check-in ownership check failed",
			slog.String("checkin_id", id.String()),
			slog.String("user_id", ownerID.String()))
		return nil, store.ErrCheckInNotOwned
	}

	return checkIn, nil
}

// ListByOwner implements store.CheckInStore.ListByOwner
// Results are ordered by date descending; page numbering starts at 1.
func (s *PostgresCheckInStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, limit int,
) (*store.CheckInPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM check_ins WHERE user_id = $1`
	if err := s.db.QueryRowContext(ctx, countQuery, ownerID).Scan(&total); err != nil {
		log.Error("failed to count check-ins",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}

	query := `
		SELECT id, user_id, date, rating, symptoms, activities, notes, created_at, updated_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, (page-1)*limit)
	if err != nil {
		log.Error("failed to list check-ins",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	checkIns := make([]*domain.CheckIn, 0, limit)
	for rows.Next() {
		checkIn, err := scanCheckIn(rows)
		if err != nil {
			log.Error("failed to scan check-in row",
				slog.String("error", err.Error()),
				slog.String("user_id", ownerID.String()))
			return nil, err
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &store.CheckInPage{
		CheckIns: checkIns,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

// Update implements store.CheckInStore.Update
// It loads the row, applies the partial update through the domain merge,
// and writes the result back. Ownership is enforced via GetByID.
func (s *PostgresCheckInStore) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	update domain.CheckInUpdate,
) (*domain.CheckIn, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	checkIn, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := checkIn.Apply(update); err != nil {
		log.Warn("check-in validation failed during update",
			slog.String("error", err.Error()),
			slog.String("checkin_id", id.String()))
		return nil, err
	}

	symptoms, err := json.Marshal(checkIn.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("failed to encode symptoms: %w", err)
	}
	activities, err := json.Marshal(checkIn.Activities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		UPDATE check_ins
		SET date = $1, rating = $2, symptoms = $3, activities = $4, notes = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		checkIn.Date,
		checkIn.Rating,
		symptoms,
		activities,
		nullableString(checkIn.Notes),
		checkIn.UpdatedAt,
		id,
		ownerID,
	)
	if err != nil {
		log.Error("failed to update check-in",
			slog.String("error", err.Error()),
			slog.String("checkin_id", id.String()))
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		// Row vanished between the read and the write.
		log.Debug("check-in not found for update",
			slog.String("checkin_id", id.String()))
		return nil, store.ErrCheckInNotFound
	}

	log.Info("check-in updated successfully",
		slog.String("checkin_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return checkIn, nil
}

// Delete implements store.CheckInStore.Delete
// A repeated delete of the same ID reports store.ErrCheckInNotFound.
func (s *PostgresCheckInStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Resolve not-found vs not-owned before deleting so a foreign-owned
	// ID never reports success or a bare 404.
	if _, err := s.GetByID(ctx, ownerID, id); err != nil {
		return err
	}

	query := `DELETE FROM check_ins WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete check-in",
			slog.String("error", err.Error()),
			slog.String("checkin_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCheckInNotFound
	}

	log.Info("check-in deleted successfully",
		slog.String("checkin_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}

// RatingTotals implements store.CheckInStore.RatingTotals
func (s *PostgresCheckInStore) RatingTotals(
	ctx context.Context,
	ownerID uuid.UUID,
) (*domain.RatingTotals, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT rating, COUNT(*)
		FROM check_ins
		WHERE user_id = $1
		GROUP BY rating
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to count rating totals",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var totals domain.RatingTotals
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		switch rating {
		case 1:
			totals.VeryBad = count
		case 2:
			totals.Bad = count
		case 3:
			totals.Neutral = count
		case 4:
			totals.Good = count
		case 5:
			totals.VeryGood = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &totals, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCheckIn scans one check-in row, decoding the jsonb tag lists.
func scanCheckIn(row rowScanner) (*domain.CheckIn, error) {
	var checkIn domain.CheckIn
	var symptoms, activities []byte
	var notes sql.NullString

	err := row.Scan(
		&checkIn.ID,
		&checkIn.UserID,
		&checkIn.Date,
		&checkIn.Rating,
		&symptoms,
		&activities,
		&notes,
		&checkIn.CreatedAt,
		&checkIn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(symptoms, &checkIn.Symptoms); err != nil {
		return nil, fmt.Errorf("failed to decode symptoms: %w", err)
	}
	if err := json.Unmarshal(activities, &checkIn.Activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	if notes.Valid {
		checkIn.Notes = notes.String
	}

	return &checkIn, nil
}

// nullableString maps an empty string onto SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
