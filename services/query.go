package services

import (
	"strings"

	"gorm.io/gorm"
)

// sortColumns whitelists sortable fields; anything else falls back to
// created_at so callers can never inject raw column names.
var sortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

func applySort(q *gorm.DB, sortBy, sortOrder string) *gorm.DB {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "asc"
	}
	return q.Order(column + " " + direction)
}

// applyContains adds a case-insensitive substring filter when value is set.
func applyContains(q *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}
