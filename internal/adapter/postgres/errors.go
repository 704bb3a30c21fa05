package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// ActiveCardIndex is the partial unique index that allows one active
// work card per worker.
const ActiveCardIndex = "ux_work_cards_active_worker"

// MapError converts pgx/pgconn errors to domain errors. entity and key name
// the row the statement targeted and prefix the message.
//
// context.Canceled passes through as-is. Deadlines, refused connections and
// connection-class server errors become *domain.TransportError.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if isTransport(err) {
		return &domain.TransportError{Op: entity + " " + key, Err: err}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == ActiveCardIndex {
				return fmt.Errorf("%s %s: %w", entity, key, domain.ErrCardAlreadyActive)
			}
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514", "22003": // check_violation, numeric_value_out_of_range
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		case "40001": // serialization_failure
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrConflict)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}

func isTransport(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exception; 57P0x: server shutting down;
		// 53300: too many connections.
		return strings.HasPrefix(pgErr.Code, "08") ||
			strings.HasPrefix(pgErr.Code, "57P0") ||
			pgErr.Code == "53300"
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
