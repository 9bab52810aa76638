package room

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOneQuery_TitleIsCaseInsensitive(t *testing.T) {
	query, args, err := selectOneQuery(titleEq("deluxe ROOM"))
	require.NoError(t, err)

	assert.Contains(t, query, "FROM rooms WHERE LOWER(title) = LOWER($1)")
	assert.Equal(t, []interface{}{"deluxe ROOM"}, args)
}

func TestSelectOneQuery_ByID(t *testing.T) {
	query, args, err := selectOneQuery(squirrel.Eq{"id": int64(3)})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM rooms WHERE id = $1")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestSchema_MoneyColumnsKeepFullPrecision(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	for _, line := range strings.Split(string(schema), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "nightly_rate" || fields[0] == "total_price" {
			assert.Equal(t, "NUMERIC", strings.TrimSuffix(fields[1], ","), "column %s must not round", fields[0])
		}
	}
}
