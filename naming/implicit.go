// Package naming plugs the identifier rules from core into gorm's schema.Namer.
package naming

import (
	"github.com/Reactman/wakanda/core"

	"gorm.io/gorm/schema"
)

// ImplicitStrategy derives table names as "T_" + upper-cased, underscored
// struct name (CustomerOrder -> T_CUSTOMER_ORDER). Everything else keeps
// gorm's default naming, after an optional physical override.
type ImplicitStrategy struct {
	schema.NamingStrategy

	// TablePattern holds one "{}" placeholder; empty means "T_{}".
	TablePattern string
	Physical     PhysicalNamer
}

// NewImplicitStrategy returns the implicit strategy with a pass-through
// physical namer.
func NewImplicitStrategy(pattern string) ImplicitStrategy {
	return ImplicitStrategy{TablePattern: pattern, Physical: PassThrough{}}
}

// TableName panics when the struct name cannot be resolved: gorm's
// Namer has no error return and schema parsing must stop there.
func (s ImplicitStrategy) TableName(str string) string {
	name, err := core.TableNameWithPattern(s.TablePattern, str)
	if err != nil {
		panic(err)
	}
	return applyPhysical(s.Physical, KindTable, name)
}

func (s ImplicitStrategy) SchemaName(table string) string {
	return applyPhysical(s.Physical, KindSchema, s.NamingStrategy.SchemaName(table))
}

func (s ImplicitStrategy) ColumnName(table, column string) string {
	return applyPhysical(s.Physical, KindColumn, s.NamingStrategy.ColumnName(table, column))
}
