package dto_test

import (
	"testing"
	"todos/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq, Table: "todos"},
			wantWhere: "todos.id = :id",
			wantArgs:  map[string]any{"id": int64(1)},
		},
		{
			name:      "eq with arg name",
			filter:    dto.Filter{ArgName: "other", Field: "owner_id", Value: 2, Operator: dto.FilterOperatorEq},
			wantWhere: "owner_id = :other",
			wantArgs:  map[string]any{"other": 2},
		},
		{
			name:      "missing operator",
			filter:    dto.Filter{Field: "id", Value: 1},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "id", Value: int64(3), Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "owner_id", Value: int64(7), Operator: dto.FilterOperatorEq},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(id = :id AND owner_id = :owner_id)", where)
		assert.Equal(t, map[string]any{"id": int64(3), "owner_id": int64(7)}, args)
	})

	t.Run("nested OR group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "complete", Value: false, Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "p1", Field: "priority", Value: 1, Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "p5", Field: "priority", Value: 5, Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(complete = :complete AND (priority = :p1 OR priority = :p5))", where)
		assert.Len(t, args, 3)
	})

	t.Run("skips unsupported entries", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{"raw", dto.Filter{Field: "id", Value: 1, Operator: dto.FilterOperatorEq}}}

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(id = :id)", where)
	})
}

func TestFilterGroup_And(t *testing.T) {
	base := dto.FilterGroup{Filters: []any{dto.Filter{Field: "id", Value: 1, Operator: dto.FilterOperatorEq}}}

	scoped := base.And(dto.Filter{Field: "owner_id", Value: 2, Operator: dto.FilterOperatorEq})

	where, _ := scoped.GetWhereClause()
	assert.Equal(t, "(id = :id AND owner_id = :owner_id)", where)
	assert.Len(t, base.Filters, 1, "And must not mutate the receiver")

	or := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "a", Field: "id", Value: 1, Operator: dto.FilterOperatorEq},
			dto.Filter{ArgName: "b", Field: "id", Value: 2, Operator: dto.FilterOperatorEq},
		},
	}

	where, _ = or.And(dto.Filter{Field: "owner_id", Value: 2, Operator: dto.FilterOperatorEq}).GetWhereClause()
	assert.Equal(t, "((id = :a OR id = :b) AND owner_id = :owner_id)", where)
}
