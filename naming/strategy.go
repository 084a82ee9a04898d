package naming

import (
	"errors"
	"strings"

	"github.com/Reactman/wakanda/core"

	"gorm.io/gorm/schema"
)

const (
	Implicit = "implicit"
	Standard = "standard"
)

var ErrUnknownStrategy = errors.New("unknown naming strategy")

// New picks a strategy by its config name; "" selects the implicit one.
// The implicit strategy rejects a table pattern without exactly one "{}",
// which would map every entity onto the same table.
func New(name, tablePattern string) (schema.Namer, error) {
	switch strings.ToLower(name) {
	case "", Implicit:
		if err := core.CheckTablePattern(tablePattern); err != nil {
			return nil, &core.ConfigurationError{Key: "table_pattern", Value: tablePattern, Err: err}
		}
		return NewImplicitStrategy(tablePattern), nil
	case Standard:
		return StandardStrategy{}, nil
	}
	return nil, &core.ConfigurationError{Key: "naming_strategy", Value: name, Err: ErrUnknownStrategy}
}
