package gopkg

import (
	"fmt"
	"reflect"

	"github.com/mattn/grove"
)

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	bytesType = reflect.TypeOf([]byte(nil))
	runesType = reflect.TypeOf([]rune(nil))
)

// toGo converts argument i of method to a value assignable to t.
func toGo(method string, i int, v grove.Value, t reflect.Type) (reflect.Value, error) {
	mismatch := func() (reflect.Value, error) {
		return reflect.Value{}, grove.Failed(method, fmt.Errorf("argument %d: cannot use %s as %s", i+1, v.TypeName(), t))
	}
	switch v := v.(type) {
	case grove.Int:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return reflect.ValueOf(int64(v)).Convert(t), nil
		case reflect.Bool:
			return reflect.ValueOf(v != 0).Convert(t), nil
		case reflect.Interface:
			if reflect.TypeOf(int64(0)).Implements(t) {
				return reflect.ValueOf(int64(v)), nil
			}
		}
	case grove.Str:
		switch {
		case t.Kind() == reflect.String:
			return reflect.ValueOf(string(v)).Convert(t), nil
		case t == bytesType:
			return reflect.ValueOf([]byte(v)), nil
		case t == runesType:
			return reflect.ValueOf([]rune(v)), nil
		case t.Kind() == reflect.Interface && reflect.TypeOf("").Implements(t):
			return reflect.ValueOf(string(v)), nil
		}
	case *grove.Object:
		h, ok := v.Impl().(*hostObject)
		if !ok {
			return mismatch()
		}
		if h.v.Type().AssignableTo(t) {
			return h.v, nil
		}
		if h.v.Elem().Type().AssignableTo(t) {
			return h.v.Elem(), nil
		}
	}
	return mismatch()
}

// fromGo converts a host result to a grove value. Values that are neither
// numbers nor text become host objects.
func fromGo(rv reflect.Value) grove.Value {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return grove.Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return grove.Int(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == float64(int64(f)) {
			return grove.Int(int64(f))
		}
		return grove.Str(fmt.Sprint(f))
	case reflect.Bool:
		return grove.Bool(rv.Bool())
	case reflect.String:
		return grove.Str(rv.String())
	case reflect.Slice:
		if rv.Type() == bytesType {
			return grove.Str(rv.Bytes())
		}
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
		if rv.Kind() == reflect.Interface {
			return fromGo(rv.Elem())
		}
	}
	if rv.Kind() != reflect.Ptr && rv.CanAddr() {
		rv = rv.Addr()
	} else if rv.Kind() != reflect.Ptr {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		rv = p
	}
	return newHostObject(rv)
}
