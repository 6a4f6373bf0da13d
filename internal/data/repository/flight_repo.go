package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skyyatra/internal/data/entity"
	"skyyatra/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	// Search matches origin and destination as case-insensitive substrings,
	// earliest departure first. An empty argument matches everything.
	Search(ctx context.Context, origin, destination string) ([]*entity.Flight, error)
	FindByID(ctx context.Context, id int64) (*entity.Flight, error)
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

// likeEscaper makes user input match literally inside ILIKE, whose default
// escape character is the backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const flightColumns = `id, flight_number, origin, destination, departure_time, arrival_time, price, created_at`

func (r *flightRepository) Search(ctx context.Context, origin, destination string) ([]*entity.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE origin ILIKE '%' || $1 || '%'
		  AND destination ILIKE '%' || $2 || '%'
		ORDER BY departure_time ASC
	`

	rows, err := r.db.Query(ctx, query, likeEscaper.Replace(origin), likeEscaper.Replace(destination))
	if err != nil {
		r.log.Error("Failed to search flights",
			zap.Error(err),
			zap.String("origin", origin),
			zap.String("destination", destination),
		)
		return nil, fmt.Errorf("search flights %s-%s: %w", origin, destination, err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		var f entity.Flight
		if err := scanFlight(rows, &f); err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) FindByID(ctx context.Context, id int64) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	var f entity.Flight
	err := scanFlight(r.db.QueryRow(ctx, query, id), &f)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID", zap.Error(err), zap.Int64("flight_id", id))
		return nil, fmt.Errorf("find flight by ID %d: %w", id, err)
	}

	return &f, nil
}

func scanFlight(row pgx.Row, f *entity.Flight) error {
	return row.Scan(
		&f.ID,
		&f.FlightNumber,
		&f.Origin,
		&f.Destination,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.Price,
		&f.CreatedAt,
	)
}
