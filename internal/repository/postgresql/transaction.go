package postgresql

import (
	"context"

	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// GetQuerier returns either the transaction stored in the context by
// database.DB.RunInTx or the plain pool. Repositories call this so the same
// method works inside and outside a transaction.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
