package bridge

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// List is a mutable ordered host collection. Sequence results are encoded
// as a List, and store intrinsics write back into one.
type List []any

// Tuple is a fixed ordered host collection. Call payloads and vector pair
// and triple values are passed as a Tuple.
type Tuple []any

// items returns the elements of an ordered host collection: a List, a
// Tuple, a []any, a *Vector, or any Go slice or array.
func items(obj any) ([]any, bool) {
	switch x := obj.(type) {
	case List:
		return x, true
	case Tuple:
		return x, true
	case []any:
		return x, true
	case *Vector:
		if x == nil {
			return nil, false
		}
		return x.List(), true
	case nil, string:
		return nil, false
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// prepareAssign checks that vals can overwrite the leading elements of dst
// and returns the function that writes them. Nothing is written when an
// element does not fit.
func prepareAssign(dst any, vals []any) (func(), error) {
	switch x := dst.(type) {
	case List:
		return func() { copy(x, vals) }, nil
	case []any:
		return func() { copy(x, vals) }, nil
	case Tuple:
		return nil, typeErrorf("a list is required, got tuple")
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && !(rv.Kind() == reflect.Array && rv.CanSet()) {
		return nil, typeErrorf("a list is required, got %T", dst)
	}
	elem := rv.Type().Elem()
	conv := make([]reflect.Value, min(rv.Len(), len(vals)))
	for i := range conv {
		v, err := convertItem(vals[i], elem)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		conv[i] = v
	}
	return func() {
		for i, v := range conv {
			rv.Index(i).Set(v)
		}
	}, nil
}

// convertItem converts a lane value to a destination element type. Numbers
// go into numeric elements only when the value fits; floats never go into
// integer elements.
func convertItem(val any, elem reflect.Type) (reflect.Value, error) {
	out := reflect.New(elem).Elem()
	v := reflect.ValueOf(val)
	fail := func() (reflect.Value, error) {
		return reflect.Value{}, typeErrorf("cannot store %T(%v) into %s", val, val, elem)
	}
	if !v.IsValid() {
		return fail()
	}
	switch elem.Kind() {
	case reflect.Interface:
		if !v.Type().Implements(elem) {
			return fail()
		}
		out.Set(v)
	case reflect.Bool:
		if v.Kind() != reflect.Bool {
			return fail()
		}
		out.SetBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch {
		case v.CanInt() && !out.OverflowInt(v.Int()):
			out.SetInt(v.Int())
		case v.CanUint() && v.Uint() <= math.MaxInt64 && !out.OverflowInt(int64(v.Uint())):
			out.SetInt(int64(v.Uint()))
		default:
			return fail()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch {
		case v.CanUint() && !out.OverflowUint(v.Uint()):
			out.SetUint(v.Uint())
		case v.CanInt() && v.Int() >= 0 && !out.OverflowUint(uint64(v.Int())):
			out.SetUint(uint64(v.Int()))
		default:
			return fail()
		}
	case reflect.Float32, reflect.Float64:
		switch {
		case v.CanFloat() && !out.OverflowFloat(v.Float()):
			out.SetFloat(v.Float())
		case v.CanInt():
			out.SetFloat(float64(v.Int()))
		case v.CanUint():
			out.SetFloat(float64(v.Uint()))
		default:
			return fail()
		}
	default:
		return fail()
	}
	return out, nil
}

// asInt interprets a host integer as a 64-bit pattern. Values wider than
// 64 bits are reduced modulo 2^64.
func asInt(obj any) (uint64, bool) {
	switch x := obj.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int:
		return uint64(x), true
	case int8:
		return uint64(x), true
	case int16:
		return uint64(x), true
	case int32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case uintptr:
		return uint64(x), true
	case *big.Int:
		if x == nil {
			return 0, false
		}
		return new(big.Int).And(x, mask64).Uint64(), true
	default:
		return 0, false
	}
}

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// asFloat interprets a host number as a float64. Integers are converted
// with rounding.
func asFloat(obj any) (float64, bool) {
	switch x := obj.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case *big.Int:
		if x == nil {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, true
	case *big.Float:
		if x == nil {
			return 0, false
		}
		f, _ := x.Float64()
		return f, true
	}
	u, ok := asInt(obj)
	if !ok {
		return 0, false
	}
	if isUnsigned(obj) {
		return float64(u), true
	}
	return float64(int64(u)), true
}

func isUnsigned(obj any) bool {
	switch obj.(type) {
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

// number is a host numeric value widened for exact comparison.
type number struct {
	f   *big.Float
	nan bool
}

// asNumber widens a host number. It reports false for non-numeric values.
func asNumber(obj any) (number, bool) {
	switch x := obj.(type) {
	case float32:
		return floatNumber(float64(x)), true
	case float64:
		return floatNumber(x), true
	case *big.Int:
		if x == nil {
			return number{}, false
		}
		return number{f: new(big.Float).SetInt(x)}, true
	case *big.Float:
		if x == nil {
			return number{}, false
		}
		return number{f: x}, true
	}
	u, ok := asInt(obj)
	if !ok {
		return number{}, false
	}
	if isUnsigned(obj) || isBool(obj) {
		return number{f: new(big.Float).SetUint64(u)}, true
	}
	return number{f: new(big.Float).SetInt64(int64(u))}, true
}

func floatNumber(f float64) number {
	if math.IsNaN(f) {
		return number{nan: true}
	}
	return number{f: new(big.Float).SetFloat64(f)}
}

func isBool(obj any) bool {
	_, ok := obj.(bool)
	return ok
}

// compareValues orders two host values. ordered is false when either value
// is NaN; ok is false when either is not a number.
func compareValues(a, b any) (c int, ordered, ok bool) {
	x, okA := asNumber(a)
	y, okB := asNumber(b)
	if !okA || !okB {
		return 0, false, false
	}
	if x.nan || y.nan {
		return 0, false, true
	}
	return x.f.Cmp(y.f), true, true
}

// valuesEqual reports host equality: numeric values compare by value,
// anything else by reflect.DeepEqual.
func valuesEqual(a, b any) bool {
	c, ordered, ok := compareValues(a, b)
	if ok {
		return ordered && c == 0
	}
	if _, isNum := asNumber(a); isNum {
		return false
	}
	if _, isNum := asNumber(b); isNum {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Equal reports whether a and b hold the same values. Numbers compare by
// value across Go types, NaN equals NaN, and collections (List, Tuple,
// slices, arrays and *Vector) compare item by item.
func Equal(a, b any) bool {
	if x, okA := asNumber(a); okA {
		y, okB := asNumber(b)
		if !okB {
			return false
		}
		if x.nan || y.nan {
			return x.nan && y.nan
		}
		return x.f.Cmp(y.f) == 0
	}
	xs, okA := items(a)
	ys, okB := items(b)
	if okA || okB {
		if !okA || !okB || len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
