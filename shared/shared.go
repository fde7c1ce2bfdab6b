package shared

import (
	"reflect"
	"strconv"
	"todos/shared/constant"
	"todos/shared/dto"
	"todos/shared/failure"
	"todos/shared/timezone"
)

// TransformFields maps every db-tagged field of data to its value, nil
// pointers included, so an update overwrites the whole mutable set.
// modified_at is always stamped.
func TransformFields(data any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return FilterByField(fieldID, id, table)
}

func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID parses an integer path parameter. Ids no row can have, such as 0,
// are left to the store to report as missing.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.Unprocessable("id must be an integer") //nolint:wrapcheck
	}

	return id, nil
}
