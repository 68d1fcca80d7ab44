package readstore

import (
	"context"
	"time"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"
	"office-scheduler/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type AttendanceReadStore struct {
	db db.DBTX
}

func NewAttendanceReadStore(dbtx db.DBTX) *AttendanceReadStore {
	return &AttendanceReadStore{db: dbtx}
}

func (r *AttendanceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AttendanceView, error) {
	query, args, err := attendanceSelect().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	view, err := scanAttendanceView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "attendance reservation not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find attendance reservation", err)
	}
	return view, nil
}

func (r *AttendanceReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.AttendanceView, error) {
	query, args, err := attendanceSelect().
		Where(sq.Eq{"user_id": userID}).
		OrderBy("reservation_day DESC", "created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}
	return r.queryViews(ctx, query, args)
}

func (r *AttendanceReadStore) FindActiveByDay(ctx context.Context, day attendance.Day) ([]*queries.AttendanceView, error) {
	query, args, err := attendanceSelect().
		Where(sq.Eq{"reservation_day": day.String()}).
		Where(sq.NotEq{"status": string(attendance.StatusCancelled)}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}
	return r.queryViews(ctx, query, args)
}

func (r *AttendanceReadStore) queryViews(ctx context.Context, query string, args []any) ([]*queries.AttendanceView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query attendance reservations", err)
	}
	defer rows.Close()

	var out []*queries.AttendanceView
	for rows.Next() {
		view, err := scanAttendanceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan attendance reservation", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate attendance reservations", err)
	}
	return out, nil
}

func attendanceSelect() sq.SelectBuilder {
	return qb.Select("id", "reservation_day", "user_id", "team_id", "status", "created_at", "updated_at").
		From("attendance_reservations")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendanceView(row rowScanner) (*queries.AttendanceView, error) {
	var (
		view queries.AttendanceView
		day  time.Time
	)
	if err := row.Scan(&view.ID, &day, &view.UserID, &view.TeamID, &view.Status, &view.CreatedAt, &view.UpdatedAt); err != nil {
		return nil, err
	}
	view.Day = day.Format("2006-01-02")
	return &view, nil
}
