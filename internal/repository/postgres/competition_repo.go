package postgres

import (
	"context"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// CompetitionRepo implements CompetitionRepository using PostgreSQL.
type CompetitionRepo struct{ db *DB }

// NewCompetitionRepo constructs a competition repository.
func NewCompetitionRepo(db *DB) *CompetitionRepo { return &CompetitionRepo{db: db} }

const competitionColumns = `id, month_code, user1_id, user2_id, user1_points, user2_points, user1_revealed, user2_revealed`

func scanCompetition(row pgx.Row) (model.Competition, error) {
	var c model.Competition
	err := row.Scan(&c.ID, &c.MonthCode, &c.User1ID, &c.User2ID, &c.User1Points, &c.User2Points, &c.User1Revealed, &c.User2Revealed)
	return c, err
}

// Create inserts a competition.
func (r *CompetitionRepo) Create(ctx context.Context, c *model.Competition) error {
	const q = `INSERT INTO competitions (` + competitionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.MonthCode, c.User1ID, c.User2ID, c.User1Points, c.User2Points, c.User1Revealed, c.User2Revealed)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a competition by ID.
func (r *CompetitionRepo) Get(ctx context.Context, id uuid.UUID) (*model.Competition, error) {
	c, err := scanCompetition(r.db.Pool.QueryRow(ctx, `SELECT `+competitionColumns+` FROM competitions WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListByMonth returns every competition of monthCode.
func (r *CompetitionRepo) ListByMonth(ctx context.Context, monthCode string) ([]model.Competition, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+competitionColumns+` FROM competitions WHERE month_code=$1 ORDER BY id`, monthCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Competition
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MarkRevealed sets one participant's revealed flag.
func (r *CompetitionRepo) MarkRevealed(ctx context.Context, id uuid.UUID, forUser1 bool) error {
	q := `UPDATE competitions SET user2_revealed=true WHERE id=$1`
	if forUser1 {
		q = `UPDATE competitions SET user1_revealed=true WHERE id=$1`
	}
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AddSnapshot inserts the day's standing; the (competition_id, snapshot_date)
// key makes a repeated trigger a no-op.
func (r *CompetitionRepo) AddSnapshot(ctx context.Context, s model.Snapshot) (bool, error) {
	const q = `
INSERT INTO competition_snapshots
    (competition_id, snapshot_date, day_of_month, user1_id, user2_id, user1_points, user2_points, taken_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (competition_id, snapshot_date) DO NOTHING`
	tag, err := r.db.Pool.Exec(ctx, q, s.CompetitionID, s.Date, int32(s.DayOfMonth), s.User1ID, s.User2ID, s.User1Points, s.User2Points, s.TakenAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
