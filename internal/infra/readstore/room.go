package readstore

import (
	"context"

	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"
	"office-scheduler/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query, args, err := roomSelect().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	var view queries.RoomView
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&view.ID, &view.Name, &view.Capacity, &view.Active, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find room", err)
	}
	return &view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context, activeOnly bool) ([]*queries.RoomView, error) {
	builder := roomSelect().OrderBy("name")
	if activeOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query rooms", err)
	}
	defer rows.Close()

	var out []*queries.RoomView
	for rows.Next() {
		var view queries.RoomView
		if err := rows.Scan(&view.ID, &view.Name, &view.Capacity, &view.Active, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room", err)
		}
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate rooms", err)
	}
	return out, nil
}

func roomSelect() sq.SelectBuilder {
	return qb.Select("id", "name", "capacity", "active", "created_at", "updated_at").
		From("meeting_rooms")
}
