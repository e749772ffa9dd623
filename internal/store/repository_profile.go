package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/models"
	"github.com/jackc/pgerrcode"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. It handles profile creation and lookup against the
// "profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// profileColumns is the scan order shared by every query returning full rows.
func scanProfile(row interface{ Scan(...any) error }) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.Email,
		&p.FirstName, &p.LastName,
		&p.Phone, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.CreatedAt, &p.LastSignIn,
	)
	return p, err
}

// CreateProfile persists a new profile row and returns the fully populated
// [models.Profile] as stored.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrProfileAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile,
		profile.ID, profile.Email,
		profile.FirstName, profile.LastName,
		profile.Phone, profile.Address, profile.City, profile.State, profile.ZipCode,
		profile.CreatedAt, profile.LastSignIn,
	)

	saved, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("id", profile.ID).Msg("profile insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Profile{}, ErrProfileAlreadyExists
		default:
			return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetProfileByID retrieves the profile row whose ID matches the given
// account ID.
//
// The primary key makes more than one match impossible; an empty result set
// is reported as [ErrProfileNotFound] rather than a zero value.
func (r *profileRepository) GetProfileByID(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	found, err := scanProfile(r.db.QueryRowContext(ctx, getProfileByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("id", id).Msg("profile lookup by id failed")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetProfileByEmail retrieves the profile row with the given email. The
// email column carries a unique constraint mirroring the provider's own
// one-account-per-email rule.
func (r *profileRepository) GetProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	found, err := scanProfile(r.db.QueryRowContext(ctx, getProfileByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("email", email).Msg("profile lookup by email failed")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateLastSignIn advances last_sign_in for the given account ID. A zero
// affected-row count means the profile does not exist.
func (r *profileRepository) UpdateLastSignIn(ctx context.Context, id string, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateLastSignIn, at, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("last_sign_in update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// UpdateProfile applies a partial update built dynamically from the non-nil
// fields of update and returns the row as stored afterwards.
func (r *profileRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("building profile update query failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("id", update.ID).Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// buildUpdateProfileQuery dynamically builds the UPDATE statement for a
// partial profile update.
func buildUpdateProfileQuery(update models.ProfileUpdate) (string, []any, error) {
	builder := sq.Update("profiles").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, email, first_name, last_name, phone, address, city, state, zip_code, created_at, last_sign_in")

	set := map[string]*string{
		"first_name": update.FirstName,
		"last_name":  update.LastName,
		"phone":      update.Phone,
		"address":    update.Address,
		"city":       update.City,
		"state":      update.State,
		"zip_code":   update.ZipCode,
	}

	changed := false
	for column, value := range set {
		if value != nil {
			builder = builder.Set(column, *value)
			changed = true
		}
	}

	if !changed {
		return "", nil, errors.New("no fields to update")
	}

	return builder.ToSql()
}
