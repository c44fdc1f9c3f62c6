package httpclient

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Params is an open set of extra query or body fields. Keys are sent
// verbatim; typed fields of the surrounding struct win on collision.
type Params map[string]any

// QueryParam is a single name/value pair.
type QueryParam struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Order is preserved on the
// wire.
type Query []QueryParam

// Add appends key with value string-coerced.
func (q Query) Add(key string, value any) Query {
	return append(q, QueryParam{Key: key, Value: Stringify(value)})
}

// Get returns the first value stored for key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (q Query) Has(key string) bool {
	_, ok := q.Get(key)
	return ok
}

// Encode renders q as "a=1&b=x" in insertion order.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Stringify coerces a scalar to its query representation. Booleans become
// "true"/"false", numbers use their shortest decimal form and slices are
// joined with ",".
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return ""
		}
		return string(b)
	case fmt.Stringer:
		return x.String()
	}
	return stringifyValue(reflect.ValueOf(v))
}

func stringifyValue(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = Stringify(v.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v.Interface())
	}
}

var paramsType = reflect.TypeFor[Params]()

// EncodeQuery flattens a list-params struct into a Query. Fields are taken
// in declaration order using their json names; nil pointers and empty
// omitempty fields are skipped. A Params field is appended last in sorted
// key order, skipping keys a typed field already set. A Query, Params or
// map[string]any value is also accepted.
func EncodeQuery(v any) (Query, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Query:
		return x, nil
	case Params:
		return appendExtras(nil, x), nil
	case map[string]any:
		return appendExtras(nil, x), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("httpclient: cannot encode %s as query", rv.Type())
	}

	var q Query
	var extras []Params
	encodeStruct(rv, &q, &extras)
	for _, e := range extras {
		q = appendExtras(q, e)
	}
	return q, nil
}

func encodeStruct(rv reflect.Value, q *Query, extras *[]Params) {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if field.Type == paramsType {
			if !fv.IsNil() {
				*extras = append(*extras, fv.Interface().(Params))
			}
			continue
		}

		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}

		if field.Anonymous && field.Tag.Get("json") == "" {
			inner := fv
			if inner.Kind() == reflect.Pointer {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				encodeStruct(inner, q, extras)
				continue
			}
		}

		if fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
			if fv.IsNil() {
				continue
			}
		} else if omitEmpty && fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Slice && fv.Len() == 0 {
			continue
		}

		*q = q.Add(name, fv.Interface())
	}
}

func jsonName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, slices.Contains(strings.Split(opts, ","), "omitempty"), false
}

func appendExtras(q Query, extras map[string]any) Query {
	keys := make([]string, 0, len(extras))
	for k := range extras {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if q.Has(k) || extras[k] == nil {
			continue
		}
		q = q.Add(k, extras[k])
	}
	return q
}
