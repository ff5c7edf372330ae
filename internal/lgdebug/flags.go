// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lgdebug

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// parse initializes the fields of flags from a comma-separated
// name=value list, such as the contents of an environment variable. Boolean
// fields accept a bare name as shorthand for name=true; integer fields
// require an explicit value. Struct tags of the form `flag:"default:true"`
// or `flag:"default:2"` set a field's value before env parsing overrides it.
func parse[T any](flags *T, env string) error {
	indexByName := make(map[string]int)
	fv := reflect.ValueOf(flags).Elem()
	ft := fv.Type()
	for i := 0; i < ft.NumField(); i++ {
		field := ft.Field(i)
		if tagStr, ok := field.Tag.Lookup("flag"); ok {
			defaultStr, ok := strings.CutPrefix(tagStr, "default:")
			if !ok {
				return fmt.Errorf("expected tag like `flag:\"default:true\"`: %s", tagStr)
			}
			if err := setField(fv.Field(i), defaultStr); err != nil {
				return fmt.Errorf("invalid default for %s: %v", field.Name, err)
			}
		}
		indexByName[strings.ToLower(field.Name)] = i
	}

	if env == "" {
		return nil
	}
	var errs []error
	for _, elem := range strings.Split(env, ",") {
		name, valueStr, hasValue := strings.Cut(elem, "=")
		index, ok := indexByName[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown flag %q", name))
			continue
		}
		field := fv.Field(index)
		if !hasValue {
			if field.Kind() != reflect.Bool {
				errs = append(errs, fmt.Errorf("flag %q requires a value", name))
				continue
			}
			valueStr = "true"
		}
		if err := setField(field, valueStr); err != nil {
			errs = append(errs, fmt.Errorf("flag %q: %v", name, err))
		}
	}
	return errors.Join(errs...)
}

func setField(f reflect.Value, s string) error {
	switch f.Kind() {
	case reflect.Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		f.SetBool(v)
	case reflect.Int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		f.SetInt(int64(v))
	default:
		return fmt.Errorf("unsupported flag field kind %s", f.Kind())
	}
	return nil
}
