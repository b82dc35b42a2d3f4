package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buemura/nessusctl/pkg/types"
)

func sampleUsers() types.Records {
	return types.Records{
		{"id": float64(1), "username": "alice", "name": "Alice", "lastlogin": "2024-01-01 10:00:00", "permissions": float64(128)},
		{"id": float64(2), "username": "bob", "name": "Bob", "lastlogin": "2024-02-01 10:00:00", "permissions": float64(64)},
	}
}

func TestDefaultProjection_Users(t *testing.T) {
	projected, err := Default(KindUsers).Apply(sampleUsers())
	require.NoError(t, err)

	records, ok := AsRecords(projected)
	require.True(t, ok)
	require.Len(t, records, 2)

	// Exactly the documented field subset, record order preserved.
	for _, rec := range records {
		assert.Len(t, rec, 4)
		for _, field := range []string{"id", "username", "name", "lastlogin"} {
			assert.Contains(t, rec, field)
		}
		assert.NotContains(t, rec, "permissions")
	}
	assert.Equal(t, float64(1), records[0]["id"])
	assert.Equal(t, float64(2), records[1]["id"])
}

func TestDefaultProjection_ColumnsOrder(t *testing.T) {
	p := Default(KindUsers)
	assert.Equal(t, []string{"id", "username", "name", "lastlogin"}, p.Columns(nil))

	p = Default(KindScans)
	assert.Equal(t, []string{"id", "name", "owner", "status", "folder_id", "creation_date", "last_modification_date"}, p.Columns(nil))
}

func TestDefaultProjections_AlwaysRetainID(t *testing.T) {
	// The delete flows rely on id surviving the default projection.
	records := types.Records{
		{"id": float64(7), "name": "x", "owner": "u", "status": "done", "folder_id": float64(3),
			"creation_date": "2024-01-01 00:00:00", "last_modification_date": "2024-01-01 00:00:00",
			"username": "u", "lastlogin": nil, "count": float64(1), "value": "v", "type": "custom"},
	}

	for _, kind := range []Kind{KindUsers, KindPolicies, KindScans, KindFamilies, KindSettings, KindFolders} {
		projected, err := Default(kind).Apply(records)
		require.NoError(t, err)
		out, ok := AsRecords(projected)
		require.True(t, ok, "kind %s", kind)
		require.Len(t, out, 1)
		assert.Equal(t, float64(7), out[0]["id"], "kind %s must keep id", kind)
	}
}

func TestCompile_Error(t *testing.T) {
	_, err := Compile("[invalid")
	require.Error(t, err)

	var exprErr *ExpressionError
	assert.True(t, errors.As(err, &exprErr))
	assert.Contains(t, err.Error(), "invalid filter expression")
}

func TestForKind_UserExpressionOverridesDefault(t *testing.T) {
	p, err := ForKind(KindUsers, "[].{who: username}")
	require.NoError(t, err)

	projected, err := p.Apply(sampleUsers())
	require.NoError(t, err)

	records, ok := AsRecords(projected)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0]["who"])
	assert.NotContains(t, records[0], "id") // no merge with the default
}

func TestApply_ScalarProjectionIsNotRecords(t *testing.T) {
	p, err := Compile("[].id")
	require.NoError(t, err)

	projected, err := p.Apply(sampleUsers())
	require.NoError(t, err)

	_, ok := AsRecords(projected)
	assert.False(t, ok)
}

func TestApply_EmptyMatchIsNotAnError(t *testing.T) {
	p, err := Compile("[?id==`99`].{id: id}")
	require.NoError(t, err)

	projected, err := p.Apply(sampleUsers())
	require.NoError(t, err)

	records, ok := AsRecords(projected)
	require.True(t, ok)
	assert.Empty(t, records)
}

func TestColumns_UserExpressionSorted(t *testing.T) {
	p, err := Compile("[].{zeta: id, alpha: username}")
	require.NoError(t, err)

	projected, err := p.Apply(sampleUsers())
	require.NoError(t, err)
	records, ok := AsRecords(projected)
	require.True(t, ok)

	assert.Equal(t, []string{"alpha", "zeta"}, p.Columns(records))
}
