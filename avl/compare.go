// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Identity - the default ordering
//
// reference kinds (pointers, maps, channels, functions, slices) are
// ordered by address, so distinct objects are distinct items even if
// their contents are equal; numbers, strings and booleans are ordered
// by value.  Any other kind panics.
func Identity[T any](a T, b T) int {
	return compareValues(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func compareValues(a reflect.Value, b reflect.Value) int {
	if reflect.Interface == a.Kind() {
		return compareInterfaces(a, b)
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return cmp.Compare(a.Pointer(), b.Pointer())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())

	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())

	case reflect.String:
		return strings.Compare(a.String(), b.String())

	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case b.Bool():
			return -1
		default:
			return +1
		}
	}

	fault.Panicf("avl: %s: %s", fault.ErrNotComparable, a.Type())
	return 0 // not reached
}

// interface values: nil sorts first, then by dynamic type name, then
// by value within a type
func compareInterfaces(a reflect.Value, b reflect.Value) int {
	switch {
	case a.IsNil() && b.IsNil():
		return 0
	case a.IsNil():
		return -1
	case b.IsNil():
		return +1
	}
	a = a.Elem()
	b = b.Elem()
	if a.Type() != b.Type() {
		return strings.Compare(a.Type().String(), b.Type().String())
	}
	return compareValues(a, b)
}
