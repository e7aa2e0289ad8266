// Copyright 2024 by The constage Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package interpolate

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Strings expands the variable placeholders in all string values of the
// passed (recursive) document, returning a new document with the expanded
// results. Non-string scalars pass through untouched.
func Strings(doc map[string]any, vars map[string]string) (map[string]any, error) {
	expanded, err := value(doc, "", vars)
	if err != nil {
		return nil, err
	}
	return expanded.(map[string]any), nil
}

// Environ returns the current process environment as a variables map
// suitable for Strings.
func Environ() map[string]string {
	vars := map[string]string{}
	for _, envvar := range os.Environ() {
		name, value, ok := strings.Cut(envvar, "=")
		if !ok {
			continue
		}
		vars[name] = value
	}
	return vars
}

// value expands a single document value, recursing into objects and arrays.
func value(v any, path string, vars map[string]string) (any, error) {
	switch v := v.(type) {
	case string:
		expanded, err := expand(v, vars)
		if err != nil {
			return nil, fmt.Errorf("error in '%s': %w", path, err)
		}
		return expanded, nil
	case map[string]any:
		result := map[string]any{}
		for key, element := range v {
			expanded, err := value(element, appendKey(path, key), vars)
			if err != nil {
				return nil, err
			}
			result[key] = expanded
		}
		return result, nil
	case []any:
		result := make([]any, 0, len(v))
		for idx, element := range v {
			expanded, err := value(element, path+"["+strconv.Itoa(idx)+"]", vars)
			if err != nil {
				return nil, err
			}
			result = append(result, expanded)
		}
		return result, nil
	default:
		return v, nil
	}
}

func appendKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// expand substitutes all placeholders in a single string value.
func expand(s string, vars map[string]string) (string, error) {
	var text strings.Builder
	for {
		plain, rest, found := strings.Cut(s, "$")
		text.WriteString(plain)
		if !found {
			return text.String(), nil
		}
		if rest == "" {
			return "", errors.New("invalid stand-alone $")
		}
		switch {
		case rest[0] == '$':
			text.WriteByte('$')
			s = rest[1:]
		case rest[0] == '{':
			substituted, remainder, err := expandBraced(rest[1:], vars)
			if err != nil {
				return "", err
			}
			text.WriteString(substituted)
			s = remainder
		default:
			name := variableName(rest)
			if name == "" {
				return "", errors.New("invalid character after $")
			}
			text.WriteString(vars[name])
			s = rest[len(name):]
		}
	}
}

// expandBraced substitutes a single braced placeholder; s starts right after
// the opening "${". It returns the substitution together with the remainder
// of the string after the closing brace.
func expandBraced(s string, vars map[string]string) (string, string, error) {
	name := variableName(s)
	if name == "" {
		return "", "", errors.New("missing variable name after ${")
	}
	rest := s[len(name):]
	if rest == "" {
		return "", "", errors.New("unclosed braced variable substitution")
	}
	if rest[0] == '}' {
		return vars[name], rest[1:], nil
	}
	op, rest, ok := substOperation(rest)
	if !ok {
		return "", "", errors.New("invalid variable substitution operation")
	}
	alternate, rest, found := strings.Cut(rest, "}")
	if !found {
		return "", "", errors.New("unclosed braced variable substitution")
	}
	value, isset := vars[name]
	switch op {
	case ":-":
		if value == "" {
			value = alternate
		}
	case "-":
		if !isset {
			value = alternate
		}
	case ":?":
		if value == "" {
			return "", "", errors.New(alternate)
		}
	case "?":
		if !isset {
			return "", "", errors.New(alternate)
		}
	}
	return value, rest, nil
}

// substOperation splits off a substitution operation, reporting unknown
// operations.
func substOperation(s string) (string, string, bool) {
	for _, op := range []string{":-", ":?", "-", "?"} {
		if strings.HasPrefix(s, op) {
			return op, s[len(op):], true
		}
	}
	return "", "", false
}

// variableName returns the variable name at the beginning of s; an empty
// name means s doesn't start with a valid name character.
func variableName(s string) string {
	for idx := 0; idx < len(s); idx++ {
		ch := s[idx]
		if ch == '_' ||
			(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(idx > 0 && ch >= '0' && ch <= '9') {
			continue
		}
		return s[:idx]
	}
	return s
}
