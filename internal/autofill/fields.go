package autofill

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"
)

var (
	// ErrNilEntity is reported when the entity argument is nil.
	ErrNilEntity = errors.New("autofill: nil entity")
	// ErrNotAddressable is reported when the entity is not a pointer to a struct.
	ErrNotAddressable = errors.New("autofill: entity is not a pointer to a struct")
	// ErrFieldMissing is reported when an audit field is absent or unexported.
	ErrFieldMissing = errors.New("autofill: audit field missing")
	// ErrFieldType is reported when an audit field has a type that cannot hold the value.
	ErrFieldType = errors.New("autofill: audit field has unsupported type")
)

// Field names resolved on entities that do not implement domain.Auditable.
const (
	FieldCreatedAt = "CreatedAt"
	FieldCreatedBy = "CreatedBy"
	FieldUpdatedAt = "UpdatedAt"
	FieldUpdatedBy = "UpdatedBy"
)

type auditField int

const (
	createdAt auditField = iota
	createdBy
	updatedAt
	updatedBy
)

// fieldNames holds the accepted struct field names per audit field, preferred first.
var fieldNames = [...][]string{
	createdAt: {FieldCreatedAt},
	createdBy: {FieldCreatedBy},
	updatedAt: {FieldUpdatedAt, "LastUpdatedAt"},
	updatedBy: {FieldUpdatedBy, "LastUpdatedBy"},
}

func (f auditField) String() string {
	return fieldNames[f][0]
}

func (f auditField) isTimestamp() bool {
	return f == createdAt || f == updatedAt
}

// value returns what f is stamped with.
func (f auditField) value(at time.Time, actor int64) any {
	if f.isTimestamp() {
		return at
	}
	return actor
}

type fieldKind int

const (
	kindTime fieldKind = iota + 1
	kindTimePtr
	kindInt
	kindIntPtr
	kindUint
	kindUintPtr
)

var timeType = reflect.TypeOf(time.Time{})

// fieldRef is the resolved location of one audit field on a struct type.
type fieldRef struct {
	index []int
	kind  fieldKind
	err   error
}

// fieldPlan is the resolved audit field layout of one struct type.
type fieldPlan [len(fieldNames)]fieldRef

var plans sync.Map // reflect.Type -> *fieldPlan

func planFor(t reflect.Type) *fieldPlan {
	if p, ok := plans.Load(t); ok {
		return p.(*fieldPlan)
	}
	p := &fieldPlan{}
	for f := range fieldNames {
		p[f] = resolve(t, auditField(f))
	}
	actual, _ := plans.LoadOrStore(t, p)
	return actual.(*fieldPlan)
}

func resolve(t reflect.Type, f auditField) fieldRef {
	var sf reflect.StructField
	found := false
	for _, name := range fieldNames[f] {
		if sf, found = t.FieldByName(name); found {
			break
		}
	}
	if !found {
		return fieldRef{err: fmt.Errorf("%w: %s has no %s", ErrFieldMissing, t, f)}
	}
	if !sf.IsExported() {
		return fieldRef{err: fmt.Errorf("%w: %s.%s is unexported", ErrFieldMissing, t, sf.Name)}
	}
	kind, ok := classify(sf.Type, f.isTimestamp())
	if !ok {
		return fieldRef{err: fmt.Errorf("%w: %s.%s is %s", ErrFieldType, t, sf.Name, sf.Type)}
	}
	return fieldRef{index: sf.Index, kind: kind}
}

func classify(t reflect.Type, timestamp bool) (fieldKind, bool) {
	if timestamp {
		switch {
		case t == timeType:
			return kindTime, true
		case t.Kind() == reflect.Pointer && t.Elem() == timeType:
			return kindTimePtr, true
		}
		return 0, false
	}

	ptr := false
	if t.Kind() == reflect.Pointer {
		ptr, t = true, t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if ptr {
			return kindIntPtr, true
		}
		return kindInt, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if ptr {
			return kindUintPtr, true
		}
		return kindUint, true
	}
	return 0, false
}

// set writes the stamp for f into the struct value sv.
func (r fieldRef) set(sv reflect.Value, f auditField, at time.Time, actor int64) error {
	if r.err != nil {
		return r.err
	}
	fv, err := sv.FieldByIndexErr(r.index)
	if err != nil {
		// nil embedded pointer on the path
		return fmt.Errorf("%w: %s.%s: %v", ErrFieldMissing, sv.Type(), f, err)
	}

	switch r.kind {
	case kindTime:
		fv.Set(reflect.ValueOf(at))
	case kindTimePtr:
		t := at
		fv.Set(reflect.ValueOf(&t))
	case kindInt, kindUint:
		return setInteger(fv, f, actor)
	case kindIntPtr, kindUintPtr:
		p := reflect.New(fv.Type().Elem())
		if err := setInteger(p.Elem(), f, actor); err != nil {
			return err
		}
		fv.Set(p)
	}
	return nil
}

func setInteger(v reflect.Value, f auditField, actor int64) error {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.OverflowInt(actor) {
			return fmt.Errorf("%w: actor %d overflows %s (%s)", ErrFieldType, actor, f, v.Type())
		}
		v.SetInt(actor)
	default:
		if actor < 0 || v.OverflowUint(uint64(actor)) {
			return fmt.Errorf("%w: actor %d overflows %s (%s)", ErrFieldType, actor, f, v.Type())
		}
		v.SetUint(uint64(actor))
	}
	return nil
}
