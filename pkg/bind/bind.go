// Package bind decodes an HTTP form body into a tagged struct and runs
// validation. The storefront submits urlencoded and multipart forms, so
// both are accepted.
package bind

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/zephyrlabs/zephyr/pkg/validate"
)

// maxFormMemory caps the in-memory portion of a multipart form.
const maxFormMemory = 4 << 20 // 4 MB

// Form parses r's form fields into dest via `form` tags and runs the
// `validate` rules on the result.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body cannot be parsed or a field cannot be
// converted to the destination type.
func Form(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	if err := parseForm(r); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: dest must be a pointer to struct, got %T", dest)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}

		raw := formValue(r, name)
		if raw == "" {
			continue
		}

		if err := setField(rv.Field(i), raw); err != nil {
			return nil, fmt.Errorf("bind: field %s: %w", name, err)
		}
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// parseForm handles both urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

// formValue reads a posted field, falling back to the query string so GET
// endpoints can share input structs.
func formValue(r *http.Request, name string) string {
	if v := r.PostFormValue(name); v != "" {
		return v
	}
	return r.URL.Query().Get(name)
}

func setField(v reflect.Value, raw string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
