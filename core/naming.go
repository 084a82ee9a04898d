// Place for pure domain logic: the identifier naming rules that turn Go
// struct and field names into database identifiers. No gorm here.
package core

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/Reactman/wakanda/global"
	"github.com/Reactman/wakanda/utils/strutil"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AddUnderscores inserts "_" at every lower-UPPER-lower boundary and upper-cases
// the result with locale-invariant mapping.
//
// Only a three rune window is considered, so acronym runs stay one word:
//
//	AddUnderscores("CustomerOrder") = "CUSTOMER_ORDER"
//	AddUnderscores("orderId")       = "ORDER_ID"
//	AddUnderscores("ID")            = "ID"
//	AddUnderscores("HTTPServer")    = "HTTPSERVER"
func AddUnderscores(name string) string {
	// a Caser keeps state between calls, so one per call
	return cases.Upper(language.Und).String(insertUnderscores(name))
}

// addUnderscoresLower is AddUnderscores with lower-casing, used by the
// standard (legacy) strategy.
//
// Dots become underscores first, so a qualified table name still yields a
// plain identifier ("app.t_customer" -> "app_t_customer").
func addUnderscoresLower(name string) string {
	name = strings.ReplaceAll(name, ".", "_")
	return cases.Lower(language.Und).String(insertUnderscores(name))
}

func insertUnderscores(name string) string {
	rs := []rune(name)
	for i := 1; i < len(rs)-1; i++ {
		if unicode.IsLower(rs[i-1]) && unicode.IsUpper(rs[i]) && unicode.IsLower(rs[i+1]) {
			rs = slices.Insert(rs, i, '_')
			i++ // the upper-case rune moved to i+1; skip it
		}
	}
	return string(rs)
}

// TableNameFor derives the physical table name using the default "T_{}" pattern.
//
//	TableNameFor("CustomerOrder") = "T_CUSTOMER_ORDER"
func TableNameFor(entity string) (string, error) {
	return TableNameWithPattern(global.DefaultTablePattern, entity)
}

// CheckTablePattern reports whether pattern can name tables: it must hold
// exactly one "{}" placeholder. The empty pattern stands for the default.
func CheckTablePattern(pattern string) error {
	if strutil.IsEmpty(pattern) {
		return nil
	}
	if n := strings.Count(pattern, strutil.AssemblePlaceholder); n != 1 {
		return fmt.Errorf("%w: table pattern %q has %d %q placeholders, want 1",
			ErrNamingResolution, pattern, n, strutil.AssemblePlaceholder)
	}
	return nil
}

// TableNameWithPattern underscores entity and assembles it into pattern's
// "{}" placeholder. An empty pattern falls back to the default.
func TableNameWithPattern(pattern, entity string) (string, error) {
	if strutil.IsBlank(entity) {
		return "", fmt.Errorf("%w: entity naming information was not provided", ErrNamingResolution)
	}
	if err := CheckTablePattern(pattern); err != nil {
		return "", err
	}
	if strutil.IsEmpty(pattern) {
		pattern = global.DefaultTablePattern
	}
	return strutil.Assemble(pattern, AddUnderscores(entity)), nil
}

// Unqualify strips everything up to the last '.', so "models.Order" -> "Order".
func Unqualify(name string) string {
	i := strutil.LastIndexOfRune(name, '.')
	if i == strutil.IndexNotFound {
		return name
	}
	return name[i+1:]
}

// ClassToTableName is the standard strategy's table rule without prefix:
// unqualified, underscored, lower-case.
func ClassToTableName(className string) string {
	return addUnderscoresLower(Unqualify(className))
}

// ColumnNameFor is the standard strategy's column rule.
//
//	ColumnNameFor("IsDeleted")     = "is_deleted"
//	ColumnNameFor("order.OrderNo") = "order_no"
func ColumnNameFor(property string) string {
	return addUnderscoresLower(Unqualify(property))
}

// ForeignKeyColumnName derives the column holding a foreign key: the column
// name of the (unqualified) property, or of the property's table when no
// property name is known, followed by "_" and the referenced column.
//
//	ForeignKeyColumnName("customer", "Customer", "t_customer", "id") = "customer_id"
func ForeignKeyColumnName(propertyName, propertyEntityName, propertyTableName, referencedColumnName string) (string, error) {
	var base string
	switch {
	case strutil.IsNotEmpty(propertyName):
		base = ColumnNameFor(propertyName)
	case strutil.IsNotEmpty(propertyTableName):
		base = addUnderscoresLower(propertyTableName)
	default:
		return "", fmt.Errorf("%w: foreign key of %q has neither property nor table name", ErrNamingResolution, propertyEntityName)
	}
	return base + "_" + referencedColumnName, nil
}
