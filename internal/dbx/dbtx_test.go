package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestDBTX_SatisfiedBySQLTypes(t *testing.T) {
	var _ DBTX = (*sql.DB)(nil)
	var _ DBTX = (*sql.Tx)(nil)
}

func TestDBTX_ExecThroughInterface(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM deadlines`).WillReturnResult(sqlmock.NewResult(0, 0))

	var h DBTX = db
	_, err = h.ExecContext(context.Background(), "DELETE FROM deadlines")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
