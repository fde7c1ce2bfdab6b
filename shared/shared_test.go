package shared_test

import (
	"net/http"
	"testing"
	"time"
	"todos/shared"
	"todos/shared/constant"
	"todos/shared/dto"
	"todos/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateRequest struct {
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Complete    bool    `db:"complete"`
	Ignored     string
	Skipped     string `db:"-"`
}

func TestTransformFields(t *testing.T) {
	before := time.Now().Add(-time.Second)

	fields := shared.TransformFields(updateRequest{Title: "buy milk", Ignored: "x", Skipped: "y"})

	assert.Equal(t, "buy milk", fields["title"])
	assert.Equal(t, false, fields["complete"], "zero values are written, not skipped")

	desc, ok := fields["description"]
	require.True(t, ok, "nil pointers are written as NULL")
	assert.Nil(t, desc)

	assert.NotContains(t, fields, "Ignored")
	assert.NotContains(t, fields, "-")

	modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time)
	require.True(t, ok)
	assert.True(t, modifiedAt.After(before))
	assert.Len(t, fields, 4)
}

func TestTransformFields_Pointer(t *testing.T) {
	fields := shared.TransformFields(&updateRequest{Title: "walk"})

	assert.Equal(t, "walk", fields["title"])
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(9), "id", "todos")

	require.Len(t, group.Filters, 1)
	assert.Equal(t, dto.Filter{Field: "id", Value: int64(9), Operator: dto.FilterOperatorEq, Table: "todos"}, group.Filters[0])

	where, args := group.GetWhereClause()
	assert.Equal(t, "(todos.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(9)}, args)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "valid", raw: "42", want: 42},
		{name: "zero", raw: "0", want: 0},
		{name: "negative", raw: "-1", want: -1},
		{name: "out of range", raw: "9223372036854775808", wantErr: true},
		{name: "decimal", raw: "1.5", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.raw)

			if tt.wantErr {
				assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
