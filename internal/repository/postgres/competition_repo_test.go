package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestCompetitionRepo_AddSnapshot_OncePerDay(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCompetitionRepo(db)
	s := model.Snapshot{
		CompetitionID: uuid.Must(uuid.NewV4()),
		Date:          time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		DayOfMonth:    14,
		User1ID:       uuid.Must(uuid.NewV4()),
		User2ID:       uuid.Must(uuid.NewV4()),
		User1Points:   120,
		User2Points:   95,
		TakenAt:       time.Now(),
	}
	args := []any{s.CompetitionID, s.Date, int32(14), s.User1ID, s.User2ID, int64(120), int64(95), s.TakenAt}

	mock.ExpectExec(sqlFrag(`ON CONFLICT (competition_id, snapshot_date) DO NOTHING`)).
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	added, err := r.AddSnapshot(context.Background(), s)
	require.NoError(t, err)
	require.True(t, added)

	mock.ExpectExec(sqlFrag(`ON CONFLICT`)).
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	added, err = r.AddSnapshot(context.Background(), s)
	require.NoError(t, err)
	require.False(t, added)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetitionRepo_ListByMonth(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCompetitionRepo(db)
	a, b := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	cols := []string{"id", "month_code", "user1_id", "user2_id", "user1_points", "user2_points", "user1_revealed", "user2_revealed"}

	mock.ExpectQuery(sqlFrag(`FROM competitions WHERE month_code=$1`)).
		WithArgs("2025-3").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(a, "2025-3", uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), int64(1), int64(2), false, false).
			AddRow(b, "2025-3", uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), int64(3), int64(4), true, false))

	list, err := r.ListByMonth(context.Background(), "2025-3")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, b, list[1].ID)
	require.True(t, list[1].User1Revealed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Append_StoresJSON(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAuditRepo(db)
	uid := uuid.Must(uuid.NewV4())
	at := time.Now()

	mock.ExpectExec(sqlFrag(`INSERT INTO audit_log`)).
		WithArgs("badge_fraud_attempt", uuid.NullUUID{UUID: uid, Valid: true}, []byte(`{"badgeId":"nope"}`), at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Append(context.Background(), model.AuditEvent{
		EventType: "badge_fraud_attempt", UserID: uid, Details: map[string]any{"badgeId": "nope"}, Timestamp: at,
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}
