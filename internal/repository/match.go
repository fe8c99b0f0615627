package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/eprossi/knowledge-minesweeper/internal/game"
)

// Match is one finished solver game: the board parameters it ran on
// and how the deduction went.
type Match struct {
	MatchId    int64
	PlayerId   *int64
	Height     int
	Width      int
	MineCount  int
	Won        bool
	Moves      int
	Deduced    int
	Guessed    int
	PlaytimeMs float64
	Seed       int64
	CreatedAt  pgtype.Timestamptz
}

type CreateMatchParams struct {
	PlayerId *int64
	Params   game.Params
	Outcome  game.Outcome
	Seed     uint64
}

func (q *Queries) CreateMatch(
	ctx context.Context, params CreateMatchParams,
) (*Match, error) {
	args := pgx.NamedArgs{
		"height":      params.Params.Height,
		"width":       params.Params.Width,
		"mine_count":  params.Params.MineCount,
		"won":         params.Outcome.Won,
		"moves":       params.Outcome.Moves,
		"deduced":     params.Outcome.Deduced,
		"guessed":     params.Outcome.Guessed,
		"playtime_ms": float64(params.Outcome.Duration.Microseconds()) / 1000,
		"seed":        int64(params.Seed),
		"player_id":   nil,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO match (
			player_id, height, width, mine_count,
			won, moves, deduced, guessed, playtime_ms, seed
		)
		VALUES (
			@player_id, @height, @width, @mine_count,
			@won, @moves, @deduced, @guessed, @playtime_ms, @seed
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Match])
}

type Record struct {
	MatchId    int64   `json:"match_id"`
	Username   *string `json:"username"`
	Height     int     `json:"height"`
	Width      int     `json:"width"`
	MineCount  int     `json:"mine_count"`
	Moves      int     `json:"moves"`
	Deduced    int     `json:"deduced"`
	Guessed    int     `json:"guessed"`
	PlaytimeMs float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username *string
	Params   *game.Params
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Params != nil {
		clauses = append(
			clauses,
			"height = @height",
			"width = @width",
			"mine_count = @mineCount",
		)
		args["height"] = f.Params.Height
		args["width"] = f.Params.Width
		args["mineCount"] = f.Params.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// GetRecords lists won matches, fewest guesses first, then fastest.
func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		match_id,
		username,
		height,
		width,
		mine_count,
		moves,
		deduced,
		guessed,
		playtime_ms
	FROM match
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY guessed, playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
