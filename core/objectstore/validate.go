package objectstore

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

func validateAddress(bucket, key string) error {
	if strings.TrimSpace(bucket) == "" {
		return fmt.Errorf("%w: bucket name is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidArgument)
	}
	return nil
}

func validateSource(src Source) error {
	switch s := src.(type) {
	case nil:
		return fmt.Errorf("%w: source is required", ErrInvalidArgument)
	case *fileSource:
		if s == nil || strings.TrimSpace(s.path) == "" {
			return fmt.Errorf("%w: local file path is required", ErrInvalidArgument)
		}
	case *streamSource:
		if s == nil || isNilReader(s.r) {
			return fmt.Errorf("%w: stream is required", ErrInvalidArgument)
		}
	}
	return nil
}

// isNilReader also catches typed nil pointers such as (*bytes.Reader)(nil).
func isNilReader(r io.Reader) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
