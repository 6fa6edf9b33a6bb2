package autofill

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
)

// Inject stamps the audit fields op is responsible for on entity.
//
// entity must be a non-nil pointer. Entities implementing domain.Auditable
// are stamped through that interface; any other pointer to struct is
// stamped by field name. Every field is
// attempted even if an earlier one fails; the returned error joins all
// failures.
func Inject(entity any, op OperationType, at time.Time, actor int64) error {
	if entity == nil {
		return ErrNilEntity
	}
	rv := reflect.ValueOf(entity)
	if rv.Kind() != reflect.Pointer {
		// setters on a value would stamp a copy
		return fmt.Errorf("%w: got %T", ErrNotAddressable, entity)
	}
	if rv.IsNil() {
		return ErrNilEntity
	}
	fields := op.fields()
	if len(fields) == 0 {
		return nil
	}

	if a, ok := entity.(domain.Auditable); ok {
		if op == OperationInsert {
			a.SetCreated(at, actor)
		}
		a.SetUpdated(at, actor)
		return nil
	}

	if rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrNotAddressable, entity)
	}
	sv := rv.Elem()
	plan := planFor(sv.Type())

	var errs []error
	for _, f := range fields {
		if err := plan[f].set(sv, f, at, actor); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
