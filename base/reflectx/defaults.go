// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection utilities, used for applying
// `default:` struct tags to configuration.
package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Nested struct fields are
// handled recursively; fields without a default tag are left unchanged.
func SetFromDefaultTags(v any) error {
	if v == nil {
		return nil
	}
	ov := reflect.ValueOf(v)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := ov
	for val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %v", val.Kind())
	}
	if !val.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: value of type %v is not settable; pass a pointer", val.Type())
	}
	return setFromDefaultTags(val)
}

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		err := SetRobust(fv, def)
		if err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetRobust sets the given settable value from the given string,
// converting to the kind of the value. It supports strings, booleans,
// integers, floats, and [time.Duration].
func SetRobust(to reflect.Value, s string) error {
	if to.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		to.SetInt(int64(d))
		return nil
	}
	switch to.Kind() {
	case reflect.String:
		to.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		to.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, to.Type().Bits())
		if err != nil {
			return err
		}
		to.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, to.Type().Bits())
		if err != nil {
			return err
		}
		to.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, to.Type().Bits())
		if err != nil {
			return err
		}
		to.SetFloat(n)
	default:
		return fmt.Errorf("reflectx.SetRobust: unsupported kind %v", to.Kind())
	}
	return nil
}
