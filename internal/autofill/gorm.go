package autofill

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// clockKey holds the statement's original config while its clock is pinned.
const clockKey = "sky:autofill_clock"

// GormPlugin runs the auto-fill stage inside gorm's create and update
// callback chains. Fields are resolved by name through the model schema.
//
// gorm's own autoCreateTime/autoUpdateTime handling reads the statement
// clock, which is pinned to the stamp until the after hooks have run, so
// untagged CreatedAt/UpdatedAt fields keep the stamped value.
type GormPlugin struct {
	interceptor *Interceptor
}

var _ gorm.Plugin = (*GormPlugin)(nil)

// NewGormPlugin wraps interceptor for use with (*gorm.DB).Use.
func NewGormPlugin(interceptor *Interceptor) *GormPlugin {
	return &GormPlugin{interceptor: interceptor}
}

// Name implements gorm.Plugin.
func (p *GormPlugin) Name() string {
	return "sky:autofill"
}

// Initialize implements gorm.Plugin.
func (p *GormPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("sky:autofill_insert", p.callback(OperationInsert)); err != nil {
		return fmt.Errorf("register insert callback: %w", err)
	}
	if err := db.Callback().Update().Before("gorm:update").
		Register("sky:autofill_update", p.callback(OperationUpdate)); err != nil {
		return fmt.Errorf("register update callback: %w", err)
	}
	if err := db.Callback().Create().After("gorm:after_create").
		Register("sky:autofill_insert_clock", restoreClock); err != nil {
		return fmt.Errorf("register insert clock callback: %w", err)
	}
	if err := db.Callback().Update().After("gorm:after_update").
		Register("sky:autofill_update_clock", restoreClock); err != nil {
		return fmt.Errorf("register update clock callback: %w", err)
	}
	return nil
}

func (p *GormPlugin) callback(op OperationType) func(*gorm.DB) {
	return func(db *gorm.DB) {
		stmt := db.Statement
		if db.Error != nil || stmt.Schema == nil {
			return
		}
		ctx := stmt.Context

		at, actor := p.interceptor.stamp(ctx)
		pinClock(db, at)
		var errs []error
		for _, f := range op.fields() {
			field := lookUpField(stmt.Schema, f)
			if field == nil {
				errs = append(errs, fmt.Errorf("%w: %s has no %s", ErrFieldMissing, stmt.Schema.Name, f))
				continue
			}
			// fromCallbacks=true applies the value to every row of a batch.
			stmt.SetColumn(field.DBName, f.value(at, actor), true)
		}

		method := "gorm:" + stmt.Table
		if err := p.interceptor.report(ctx, method, op, stmt.Schema.Name, errors.Join(errs...)); err != nil {
			_ = db.AddError(err)
		}
	}
}

func lookUpField(s *schema.Schema, f auditField) *schema.Field {
	for _, name := range fieldNames[f] {
		if field := s.LookUpField(name); field != nil {
			return field
		}
	}
	return nil
}

// pinClock makes db.NowFunc return at for the rest of the statement.
// The shared config is copied, never mutated.
func pinClock(db *gorm.DB, at time.Time) {
	cfg := *db.Config
	cfg.NowFunc = func() time.Time { return at }
	db.InstanceSet(clockKey, db.Config)
	db.Config = &cfg
}

func restoreClock(db *gorm.DB) {
	if cfg, ok := db.InstanceGet(clockKey); ok {
		db.Config = cfg.(*gorm.Config)
	}
}
