package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchScope matches term case-insensitively against any of the columns.
// LOWER/LIKE is used instead of ILIKE so the same query runs on SQLite.
func SearchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(COALESCE(" + col + ", '')) LIKE ? ESCAPE '\\'"
			args[i] = pattern
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// ProjectsScope restricts a bills or payments query to the given projects.
// An empty list matches nothing.
func ProjectsScope(projectIDs []uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(projectIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("project_id IN ?", projectIDs)
	}
}
