package repository

import (
	"context"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const roomTable = "meeting_rooms"

var roomColumns = []string{
	"id", "name", "capacity", "active", "created_at", "updated_at",
}

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, room *meetingroom.Room) (*meetingroom.Room, error) {
	query, args, err := qb.Insert(roomTable).
		Columns("id", "name", "capacity", "active").
		Values(room.ID, room.Name, room.Capacity, room.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build insert query", err)
	}

	created := *room
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, infra.ClassifyPgError("failed to create room", err)
	}
	return &created, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *meetingroom.Room) (*meetingroom.Room, error) {
	query, args, err := qb.Update(roomTable).
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("active", room.Active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": room.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build update query", err)
	}

	updated := *room
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
		}
		return nil, infra.ClassifyPgError("failed to update room", err)
	}
	return &updated, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*meetingroom.Room, error) {
	query, args, err := qb.Select(roomColumns...).
		From(roomTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	var room meetingroom.Room
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&room.ID, &room.Name, &room.Capacity, &room.Active, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find room", err)
	}
	return &room, nil
}
