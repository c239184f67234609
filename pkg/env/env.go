package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/usergraph/social-service/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T any](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("env %s not found", key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return v, nil
}

func ParseOptional[T any](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	v, err := Parse[T](key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseDefault[T any](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}
	return *v, nil
}
