package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/models"
)

type clientStateRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

func NewClientStateRepository(db *DB, logger *logger.Logger) ClientStateRepository {
	return &clientStateRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (r *clientStateRepository) Load(ctx context.Context) (models.ClientState, error) {
	query, args, err := buildLoadClientStateQuery()
	if err != nil {
		return models.ClientState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state models.ClientState
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&state.DeviceToken,
		&state.UserToken,
		&state.Endpoint,
		&state.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClientState{}, ErrClientStateNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "clientStateRepository.Load").
			Msg("failed to query client state")
		return models.ClientState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, nil
}

func (r *clientStateRepository) Save(ctx context.Context, state models.ClientState) error {
	query, args, err := buildSaveClientStateQuery(state, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "clientStateRepository.Save").
			Bool("registered", state.IsRegistered()).
			Str("endpoint", state.Endpoint).
			Msg("failed to upsert client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *clientStateRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearClientStateQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "clientStateRepository.Clear").
			Msg("failed to delete client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
