package repository

import (
	"context"
	"time"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const attendanceTable = "attendance_reservations"

var attendanceColumns = []string{
	"id", "reservation_day", "user_id", "team_id", "status", "created_at", "updated_at",
}

type AttendanceRepository struct {
	db db.DBTX
}

func NewAttendanceRepository(dbtx db.DBTX) *AttendanceRepository {
	return &AttendanceRepository{db: dbtx}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *attendance.Reservation) (*attendance.Reservation, error) {
	query, args, err := qb.Insert(attendanceTable).
		Columns("id", "reservation_day", "user_id", "team_id", "status").
		Values(rec.ID, dayToDate(rec.Day), rec.UserID, rec.TeamID, string(rec.Status)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build insert query", err)
	}

	created := *rec
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, infra.ClassifyPgError("failed to create attendance reservation", err)
	}
	return &created, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec *attendance.Reservation) (*attendance.Reservation, error) {
	query, args, err := qb.Update(attendanceTable).
		Set("reservation_day", dayToDate(rec.Day)).
		Set("user_id", rec.UserID).
		Set("team_id", rec.TeamID).
		Set("status", string(rec.Status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": rec.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build update query", err)
	}

	updated := *rec
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "attendance reservation not found")
		}
		return nil, infra.ClassifyPgError("failed to update attendance reservation", err)
	}
	return &updated, nil
}

func (r *AttendanceRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Update(attendanceTable).
		Set("status", string(attendance.StatusCancelled)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": string(attendance.StatusCancelled)}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build cancel query", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.ClassifyPgError("failed to cancel attendance reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "attendance reservation not found")
	}
	return nil
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*attendance.Reservation, error) {
	query, args, err := qb.Select(attendanceColumns...).
		From(attendanceTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	rec, err := scanReservation(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "attendance reservation not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find attendance reservation", err)
	}
	return rec, nil
}

func (r *AttendanceRepository) FindActiveByDay(ctx context.Context, day attendance.Day) ([]attendance.Reservation, error) {
	query, args, err := qb.Select(attendanceColumns...).
		From(attendanceTable).
		Where(sq.Eq{"reservation_day": dayToDate(day)}).
		Where(sq.NotEq{"status": string(attendance.StatusCancelled)}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	return r.queryReservations(ctx, query, args)
}

func (r *AttendanceRepository) FindStalePending(ctx context.Context, before time.Time) ([]attendance.Reservation, error) {
	query, args, err := qb.Select(attendanceColumns...).
		From(attendanceTable).
		Where(sq.Eq{"status": string(attendance.StatusPending)}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	return r.queryReservations(ctx, query, args)
}

func (r *AttendanceRepository) queryReservations(ctx context.Context, query string, args []any) ([]attendance.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query attendance reservations", err)
	}
	defer rows.Close()

	var out []attendance.Reservation
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan attendance reservation", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate attendance reservations", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*attendance.Reservation, error) {
	var (
		rec    attendance.Reservation
		day    time.Time
		status string
	)
	if err := row.Scan(&rec.ID, &day, &rec.UserID, &rec.TeamID, &status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	y, m, d := day.Date()
	rec.Day = attendance.Day{Year: y, Month: m, Date: d}
	rec.Status = attendance.Status(status)
	return &rec, nil
}

// dayToDate renders the calendar day as a DATE literal; the column has no
// timezone, so the office-local day string is the value stored.
func dayToDate(d attendance.Day) string {
	return d.String()
}
