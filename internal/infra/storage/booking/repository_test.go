package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/pkg/dbmetrics"
)

type txStub struct {
	dbmetrics.DBExecutor
}

func (txStub) Commit() error   { return nil }
func (txStub) Rollback() error { return nil }

func TestGetByIDQuery_LocksRowInsideTransaction(t *testing.T) {
	ctx := dbmetrics.WithTx(context.Background(), txStub{})

	query, args, err := getByIDQuery(ctx, 15)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "FOR UPDATE"), query)
	assert.Contains(t, query, "FROM bookings WHERE id = $1")
	assert.Equal(t, []interface{}{int64(15)}, args)
}

func TestGetByIDQuery_NoLockOutsideTransaction(t *testing.T) {
	query, args, err := getByIDQuery(context.Background(), 15)
	require.NoError(t, err)

	assert.NotContains(t, query, "FOR UPDATE")
	assert.True(t, strings.HasSuffix(query, "WHERE id = $1"), query)
	assert.Equal(t, []interface{}{int64(15)}, args)
}
