package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" tags of the DBModel struct, optionally
// prefixed (for use in joins). Every exported field must carry a db tag.
func ColumnList[DBModel any](prefixes ...string) []string {
	var dbModel DBModel
	modelType := reflect.TypeOf(dbModel)

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("db")
		if !ok {
			panic(fmt.Sprintf("missing db tag on field %s of %T", field.Name, dbModel))
		}
		if tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}

	for _, prefix := range prefixes {
		for i, column := range columns {
			columns[i] = prefix + "." + column
		}
	}
	return columns
}
