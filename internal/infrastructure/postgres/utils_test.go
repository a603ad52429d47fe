package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trunks-api/internal/domain"
)

func TestTranslate_CodigosSQLState(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{codeUniqueViolation, domain.ErrDuplicate},
		{codeCheckViolation, domain.ErrInvalidInput},
		{codeStringTooLong, domain.ErrInvalidInput},
		{codeNumericOutOfRange, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := translate("insert did", fmt.Errorf("exec: %w", &pgconn.PgError{Code: tc.code, ConstraintName: "dids_did_number_key"}))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTranslate_OtrosErroresSeEnvuelven(t *testing.T) {
	boom := errors.New("conn closed")
	err := translate("update customer", boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "update customer")
	assert.False(t, errors.Is(err, domain.ErrDuplicate))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(pgconn.NewCommandTag("DELETE 0")), domain.ErrNotFound)
	assert.NoError(t, affected(pgconn.NewCommandTag("UPDATE 1")))
}

func TestNoRows(t *testing.T) {
	assert.True(t, noRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, noRows(errors.New("otro")))
}

func TestMigrationNames_Ordenadas(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])
	assert.IsNonDecreasing(t, names)
}
