package transform

import (
	"reflect"

	"github.com/Gobd/unindent"
)

// tagName marks fields the walker leaves alone when set to "-".
const tagName = "unindent"

// StructUnindent runs [unindent.Unindent] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, and map values.
func StructUnindent(v any) {
	StructEdit[unindent.Unindent](v)
}

// StructFold runs [unindent.Fold] on all string fields in the struct recursively.
func StructFold(v any) {
	StructEdit[unindent.Fold](v)
}

// StructEdit runs the editor E on all string fields in the struct recursively.
func StructEdit[E unindent.Editor](v any) {
	stringFunc(v, unindent.Apply[E])
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	stringFunc(v, f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

func stringFunc(a any, f func(string) string) { //nolint:revive // reflection walker is inherently complex
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || v.Type().Field(i).Tag.Get(tagName) == "-" {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(f(field.String()))
		case reflect.Struct:
			stringFunc(field.Addr().Interface(), f)
		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			switch field.Elem().Kind() {
			case reflect.String:
				field.Elem().SetString(f(field.Elem().String()))
			case reflect.Struct:
				stringFunc(field.Interface(), f)
			}
		case reflect.Interface:
			// The dynamic value is not addressable; leave it.
		case reflect.Slice:
			for j := range field.Len() {
				editElem(field.Index(j), f)
			}
		case reflect.Map:
			for _, key := range field.MapKeys() {
				val := field.MapIndex(key)
				switch val.Kind() {
				case reflect.String:
					nv := reflect.New(val.Type()).Elem()
					nv.SetString(f(val.String()))
					field.SetMapIndex(key, nv)
				case reflect.Struct:
					cp := reflect.New(val.Type()).Elem()
					cp.Set(val)
					stringFunc(cp.Addr().Interface(), f)
					field.SetMapIndex(key, cp)
				}
			}
		}
	}
}

func editElem(elem reflect.Value, f func(string) string) {
	switch elem.Kind() {
	case reflect.String:
		elem.SetString(f(elem.String()))
	case reflect.Struct:
		stringFunc(elem.Addr().Interface(), f)
	case reflect.Pointer:
		if elem.IsNil() {
			return
		}
		switch elem.Elem().Kind() {
		case reflect.String:
			elem.Elem().SetString(f(elem.Elem().String()))
		case reflect.Struct:
			stringFunc(elem.Interface(), f)
		}
	}
}
