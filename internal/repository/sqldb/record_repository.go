package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/domain"
	"github.com/collisions-monitor/internal/domain/repository"
)

const selectCollisionsQuery = `
	SELECT
		case_id,
		latitude,
		longitude,
		collision_date,
		collision_time,
		collision_severity,
		severe_injury_count,
		pedestrian_killed_count,
		pedestrian_injured_count,
		bicyclist_killed_count,
		bicyclist_injured_count,
		killed_victims,
		injured_victims,
		pcf_violation_category,
		alcohol_involved,
		county_city_location,
		pedestrian_collision,
		bicycle_collision,
		motorcycle_collision,
		truck_collision
	FROM collisions
	WHERE collision_date IS NOT NULL
		AND collision_time IS NOT NULL
		AND collision_date >= ?
		AND collision_date < ?
`

// collisionRow is scanned as text so that one malformed column drops the row
// instead of aborting the whole load.
type collisionRow struct {
	CaseID                 sql.NullString `db:"case_id"`
	Latitude               sql.NullString `db:"latitude"`
	Longitude              sql.NullString `db:"longitude"`
	CollisionDate          sql.NullString `db:"collision_date"`
	CollisionTime          sql.NullString `db:"collision_time"`
	CollisionSeverity      sql.NullString `db:"collision_severity"`
	SevereInjuryCount      sql.NullString `db:"severe_injury_count"`
	PedestrianKilledCount  sql.NullString `db:"pedestrian_killed_count"`
	PedestrianInjuredCount sql.NullString `db:"pedestrian_injured_count"`
	BicyclistKilledCount   sql.NullString `db:"bicyclist_killed_count"`
	BicyclistInjuredCount  sql.NullString `db:"bicyclist_injured_count"`
	KilledVictims          sql.NullString `db:"killed_victims"`
	InjuredVictims         sql.NullString `db:"injured_victims"`
	PrimaryFactor          sql.NullString `db:"pcf_violation_category"`
	AlcoholInvolved        sql.NullString `db:"alcohol_involved"`
	CountyCityLocation     sql.NullString `db:"county_city_location"`
	PedestrianCollision    sql.NullString `db:"pedestrian_collision"`
	BicycleCollision       sql.NullString `db:"bicycle_collision"`
	MotorcycleCollision    sql.NullString `db:"motorcycle_collision"`
	TruckCollision         sql.NullString `db:"truck_collision"`
}

type recordRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRecordRepository создает репозиторий записей о ДТП
func NewRecordRepository(db *DB) repository.RecordRepository {
	return &recordRepository{
		db:     db,
		logger: db.logger,
	}
}

// LoadWindow загружает все записи с заполненными датой и временем в пределах окна
func (r *recordRepository) LoadWindow(ctx context.Context, window domain.DateWindow) (domain.RecordSet, domain.LoadReport, error) {
	report := domain.LoadReport{Window: window}

	// Half-open upper bound: dates stored as "2021-12-31 00:00:00" sort after "2021-12-31".
	query := r.db.Rebind(selectCollisionsQuery)
	rows, err := r.db.QueryxContext(ctx, query,
		window.Start.Format(time.DateOnly),
		window.End.AddDate(0, 0, 1).Format(time.DateOnly),
	)
	if err != nil {
		return nil, report, fmt.Errorf("query collisions: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	records := make(domain.RecordSet, 0, 1024)
	for rows.Next() {
		var row collisionRow
		if err := rows.StructScan(&row); err != nil {
			report.Excluded++
			r.logger.Debug("Skipping unscannable collision row", zap.Error(err))
			continue
		}

		record, err := row.toRecord()
		if err != nil {
			report.Excluded++
			r.logger.Debug("Skipping malformed collision row",
				zap.String("case_id", row.CaseID.String),
				zap.Error(err),
			)
			continue
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, report, fmt.Errorf("iterate collisions: %w: %w", domain.ErrSourceUnavailable, err)
	}

	report.Loaded = len(records)
	report.LoadedAt = time.Now().UTC()

	if report.Excluded > 0 {
		r.logger.Warn("Malformed collision rows excluded",
			zap.Int("excluded", report.Excluded),
			zap.Int("loaded", report.Loaded),
		)
	}

	return records, report, nil
}

func (r *recordRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}

func (row collisionRow) toRecord() (domain.Record, error) {
	var (
		rec domain.Record
		err error
	)

	rec.CaseID = row.CaseID.String

	if rec.CollisionDate, err = parseDate(row.CollisionDate); err != nil {
		return rec, fmt.Errorf("collision_date: %w", err)
	}
	if rec.CollisionTime, err = parseClock(row.CollisionTime); err != nil {
		return rec, fmt.Errorf("collision_time: %w", err)
	}
	if rec.Latitude, err = parseOptionalFloat(row.Latitude); err != nil {
		return rec, fmt.Errorf("latitude: %w", err)
	}
	if rec.Longitude, err = parseOptionalFloat(row.Longitude); err != nil {
		return rec, fmt.Errorf("longitude: %w", err)
	}

	counts := []struct {
		name   string
		src    sql.NullString
		target *int
	}{
		{"severe_injury_count", row.SevereInjuryCount, &rec.SevereInjuryCount},
		{"pedestrian_killed_count", row.PedestrianKilledCount, &rec.PedestrianKilledCount},
		{"pedestrian_injured_count", row.PedestrianInjuredCount, &rec.PedestrianInjuredCount},
		{"bicyclist_killed_count", row.BicyclistKilledCount, &rec.BicyclistKilledCount},
		{"bicyclist_injured_count", row.BicyclistInjuredCount, &rec.BicyclistInjuredCount},
		{"killed_victims", row.KilledVictims, &rec.KilledVictims},
		{"injured_victims", row.InjuredVictims, &rec.InjuredVictims},
	}
	for _, c := range counts {
		if *c.target, err = parseCount(c.src); err != nil {
			return rec, fmt.Errorf("%s: %w", c.name, err)
		}
	}

	flags := []struct {
		name   string
		src    sql.NullString
		target *bool
	}{
		{"alcohol_involved", row.AlcoholInvolved, &rec.AlcoholInvolved},
		{"pedestrian_collision", row.PedestrianCollision, &rec.PedestrianCollision},
		{"bicycle_collision", row.BicycleCollision, &rec.BicycleCollision},
		{"motorcycle_collision", row.MotorcycleCollision, &rec.MotorcycleCollision},
		{"truck_collision", row.TruckCollision, &rec.TruckCollision},
	}
	for _, f := range flags {
		if *f.target, err = parseFlag(f.src); err != nil {
			return rec, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	rec.CountyCode = countyCode(row.CountyCityLocation)
	rec.CollisionSeverity = row.CollisionSeverity.String
	if row.PrimaryFactor.Valid && row.PrimaryFactor.String != "" {
		factor := row.PrimaryFactor.String
		rec.PrimaryFactor = &factor
	}

	return rec, nil
}
