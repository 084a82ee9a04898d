package auditing

import (
	"gorm.io/gorm"
)

const (
	fieldCreatedBy = "CreatedBy"
	fieldUpdatedBy = "UpdatedBy"
)

// RegisterCallbacks stamps CreatedBy/UpdatedBy on every create and
// UpdatedBy on every update, using the auditor resolved from the
// statement's context. Models without those fields are left alone.
func RegisterCallbacks(db *gorm.DB, auditor AuditorAware) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("audit:stamp_create", stamp(auditor, fieldCreatedBy, fieldUpdatedBy)); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").
		Register("audit:stamp_update", stamp(auditor, fieldUpdatedBy))
}

func stamp(auditor AuditorAware, fields ...string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Schema == nil {
			return
		}
		who, ok := auditor.CurrentAuditor(tx.Statement.Context)
		if !ok {
			return
		}
		for _, name := range fields {
			if tx.Statement.Schema.LookUpField(name) != nil {
				tx.Statement.SetColumn(name, who, true)
			}
		}
	}
}
