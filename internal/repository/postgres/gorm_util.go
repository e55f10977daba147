package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/saas-platform-api/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term anywhere,
// with LIKE wildcards in term taken literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// matchAny restricts db to rows where at least one of columns contains term,
// ignoring case. An empty term leaves db untouched.
func matchAny(db *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return db
	}

	pattern := containsPattern(term)
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		clauses[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column)
		args[i] = pattern
	}

	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// scopeTenant restricts db to a single tenant's rows.
func scopeTenant(db *gorm.DB, tenantID uuid.UUID) *gorm.DB {
	return db.Where("tenant_id = ?", tenantID)
}

// activeOnly keeps rows that are flagged active and in the Active status.
func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ? AND status = ?", true, domain.StatusActive)
}

// excludeID drops one row from a uniqueness check.
func excludeID(db *gorm.DB, id *uuid.UUID) *gorm.DB {
	if id == nil {
		return db
	}
	return db.Where("id <> ?", *id)
}

// findPage counts the rows matched by filter and then loads one page of them,
// newest first. Both queries run in the store.
func findPage[T any](db *gorm.DB, filter func(*gorm.DB) *gorm.DB, page domain.PageRequest) (*domain.Page[T], error) {
	var total int64
	if err := filter(db.Model(new(T))).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, max(page.PageSize, 0))
	query := filter(db).Order("created_date DESC").Order("id DESC").Offset(page.Offset())
	if page.PageSize > 0 {
		query = query.Limit(page.PageSize)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	return &domain.Page[T]{
		Items:      items,
		TotalCount: total,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}
