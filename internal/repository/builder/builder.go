package builder

import (
	"fmt"
	"strings"
)

// Placeholder selects how bind parameters are rendered.
type Placeholder int

const (
	// Dollar renders $1, $2, ... (PostgreSQL).
	Dollar Placeholder = iota
	// Question renders ? (SQLite).
	Question
)

// SQLBuilder helps construct SQL queries dynamically.
type SQLBuilder struct {
	placeholder Placeholder
	table       string
	columns     []string
	values      []interface{}
	setCols     []string
	setArgs     []interface{}
	where       []string
	whereArgs   []interface{}
	orderBy     []string
	returning   []string
	limit       int
	offset      int
	isInsert    bool
	isUpdate    bool
	isDelete    bool
	isSelect    bool
}

// NewSQLBuilder creates a builder that emits PostgreSQL placeholders.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{placeholder: Dollar}
}

// NewSQLBuilderFor creates a builder for the given placeholder style.
func NewSQLBuilderFor(p Placeholder) *SQLBuilder {
	return &SQLBuilder{placeholder: p}
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.isSelect = true
	b.columns = cols
	return b
}

// Insert specifies the table and columns for insertion.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.isInsert = true
	b.table = table
	b.columns = cols
	return b
}

// Update specifies the table to update.
func (b *SQLBuilder) Update(table string) *SQLBuilder {
	b.isUpdate = true
	b.table = table
	return b
}

// Delete specifies the table to delete from.
func (b *SQLBuilder) Delete(table string) *SQLBuilder {
	b.isDelete = true
	b.table = table
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Set adds a column assignment to an UPDATE.
func (b *SQLBuilder) Set(col string, val interface{}) *SQLBuilder {
	b.setCols = append(b.setCols, col)
	b.setArgs = append(b.setArgs, val)
	return b
}

// Values specifies the values for insertion.
func (b *SQLBuilder) Values(vals ...interface{}) *SQLBuilder {
	b.values = vals
	return b
}

// Where adds a condition; conditions are joined with AND. Use ? for
// parameters regardless of the placeholder style.
func (b *SQLBuilder) Where(condition string, args ...interface{}) *SQLBuilder {
	b.where = append(b.where, condition)
	b.whereArgs = append(b.whereArgs, args...)
	return b
}

// OrderBy adds an ORDER BY clause.
func (b *SQLBuilder) OrderBy(order string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order)
	return b
}

// Limit adds a LIMIT clause.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// Offset adds an OFFSET clause.
func (b *SQLBuilder) Offset(offset int) *SQLBuilder {
	b.offset = offset
	return b
}

// Returning adds a RETURNING clause to INSERT, UPDATE or DELETE.
func (b *SQLBuilder) Returning(cols ...string) *SQLBuilder {
	b.returning = cols
	return b
}

func (b *SQLBuilder) bind(n int) string {
	if b.placeholder == Question {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// Build constructs the final SQL string and arguments.
func (b *SQLBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}
	argIndex := 1

	switch {
	case b.isSelect:
		sb.WriteString("SELECT ")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(" FROM ")
		sb.WriteString(b.table)
	case b.isInsert:
		sb.WriteString("INSERT INTO ")
		sb.WriteString(b.table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(") VALUES (")
		placeholders := make([]string, len(b.values))
		for i := range b.values {
			placeholders[i] = b.bind(argIndex)
			argIndex++
		}
		sb.WriteString(strings.Join(placeholders, ", "))
		sb.WriteString(")")
		args = append(args, b.values...)
	case b.isUpdate:
		sb.WriteString("UPDATE ")
		sb.WriteString(b.table)
		sb.WriteString(" SET ")
		setClauses := make([]string, len(b.setCols))
		for i, col := range b.setCols {
			setClauses[i] = col + " = " + b.bind(argIndex)
			argIndex++
		}
		sb.WriteString(strings.Join(setClauses, ", "))
		args = append(args, b.setArgs...)
	case b.isDelete:
		sb.WriteString("DELETE FROM ")
		sb.WriteString(b.table)
	}

	if len(b.where) > 0 && !b.isInsert {
		sb.WriteString(" WHERE ")
		parts := strings.Split(strings.Join(b.where, " AND "), "?")
		for i, part := range parts {
			sb.WriteString(part)
			if i < len(parts)-1 {
				sb.WriteString(b.bind(argIndex))
				argIndex++
			}
		}
		args = append(args, b.whereArgs...)
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}

	if b.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", b.offset))
	}

	if len(b.returning) > 0 && !b.isSelect {
		sb.WriteString(" RETURNING ")
		sb.WriteString(strings.Join(b.returning, ", "))
	}

	return sb.String(), args
}
