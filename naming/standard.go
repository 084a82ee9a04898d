package naming

import (
	"fmt"

	"github.com/Reactman/wakanda/core"

	"gorm.io/gorm/schema"
)

const standardTablePrefix = "t_%s"

// StandardStrategy is the older, lower-case variant: t_customer_order,
// order_no, and foreign keys named after their column plus the referenced one.
type StandardStrategy struct {
	schema.NamingStrategy
}

func (s StandardStrategy) TableName(str string) string {
	return fmt.Sprintf(standardTablePrefix, core.ClassToTableName(str))
}

func (s StandardStrategy) ColumnName(_, column string) string {
	return core.ColumnNameFor(column)
}

// ForeignKeyColumnName appends "_" + referencedColumnName to the column
// derived from the property (or its table).
func (s StandardStrategy) ForeignKeyColumnName(propertyName, propertyEntityName, propertyTableName, referencedColumnName string) (string, error) {
	return core.ForeignKeyColumnName(propertyName, propertyEntityName, propertyTableName, referencedColumnName)
}

// RelationshipFKName names the constraint fk_<owner table>_<fk column>.
func (s StandardStrategy) RelationshipFKName(rel schema.Relationship) string {
	if rel.Schema == nil || rel.FieldSchema == nil {
		return s.NamingStrategy.RelationshipFKName(rel)
	}
	ref := "id"
	if len(rel.References) > 0 && rel.References[0].PrimaryKey != nil {
		ref = rel.References[0].PrimaryKey.DBName
	}
	fk, err := s.ForeignKeyColumnName(rel.Name, rel.FieldSchema.Name, rel.FieldSchema.Table, ref)
	if err != nil {
		return s.NamingStrategy.RelationshipFKName(rel)
	}
	return "fk_" + rel.Schema.Table + "_" + fk
}
