package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestLinkRepo_Create_PendingPairIsUnique(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLinkRepo(db)
	now := time.Now()
	req := &model.LinkRequest{
		ID: uuid.Must(uuid.NewV4()), FromUserID: uuid.Must(uuid.NewV4()), ToUserID: uuid.Must(uuid.NewV4()),
		FromUserName: "A", ToUserName: "B", CreatedAt: now, ExpiresAt: now.Add(7 * 24 * time.Hour),
	}

	mock.ExpectExec(sqlFrag(`INSERT INTO link_requests`)).
		WithArgs(req.ID, req.FromUserID, req.ToUserID, "A", "B", req.CreatedAt, req.ExpiresAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(context.Background(), req), errs.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_Accept_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLinkRepo(db)
	id, from, to := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(sqlFrag(`FROM link_requests WHERE id=$1 FOR UPDATE`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"from_user_id", "to_user_id", "status"}).AddRow(from, to, "pending"))
	mock.ExpectQuery(sqlFrag(`FROM users WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`)).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"id", "partner_id"}).
			AddRow(from, uuid.NullUUID{}).
			AddRow(to, uuid.NullUUID{}))
	mock.ExpectExec(sqlFrag(`SET partner_id = CASE WHEN id=$1`)).
		WithArgs(from, to, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectExec(sqlFrag(`UPDATE link_requests SET status='accepted'`)).
		WithArgs(id, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	require.NoError(t, r.Accept(context.Background(), id, at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_Accept_RefusesWhenEitherSideLinked(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLinkRepo(db)
	id, from, to := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(sqlFrag(`FOR UPDATE`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"from_user_id", "to_user_id", "status"}).AddRow(from, to, "pending"))
	mock.ExpectQuery(sqlFrag(`FROM users WHERE id IN`)).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"id", "partner_id"}).
			AddRow(from, uuid.NullUUID{}).
			AddRow(to, uuid.NullUUID{UUID: other, Valid: true}))
	mock.ExpectRollback()

	require.ErrorIs(t, r.Accept(context.Background(), id, time.Now()), errs.ErrAlreadyLinked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_Accept_NotPending(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLinkRepo(db)
	id := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(sqlFrag(`FOR UPDATE`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"from_user_id", "to_user_id", "status"}).
			AddRow(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), "rejected"))
	mock.ExpectRollback()

	require.ErrorIs(t, r.Accept(context.Background(), id, time.Now()), errs.ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkRepo_Resolve_CompareAndSet(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLinkRepo(db)
	id := uuid.Must(uuid.NewV4())
	at := time.Now()

	mock.ExpectExec(sqlFrag(`WHERE id=$1 AND status='pending'`)).
		WithArgs(id, "rejected", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Resolve(context.Background(), id, model.LinkRejected, at))

	mock.ExpectExec(sqlFrag(`WHERE id=$1 AND status='pending'`)).
		WithArgs(id, "expired", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(sqlFrag(`FROM link_requests WHERE id=$1`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "from_user_id", "to_user_id", "from_user_name", "to_user_name", "status", "created_at", "expires_at", "resolved_at",
		}).AddRow(id, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), "A", "B", "accepted", at, at, &at))
	require.ErrorIs(t, r.Resolve(context.Background(), id, model.LinkExpired, at), errs.ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
