// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"fmt"
	"strings"
)

// StringMapFlag is a flag value holding comma separated key=value pairs,
// e.g. "foo=bar,baz=qux". It satisfies both flag.Value and pflag.Value.
type StringMapFlag map[string]string

func (m *StringMapFlag) String() string {
	if m == nil || *m == nil {
		return ""
	}
	pairs := make([]string, 0, len(*m))
	for k, v := range *m {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	}
	return strings.Join(pairs, ",")
}

func (m *StringMapFlag) Set(value string) error {
	result := map[string]string{}
	if strings.TrimSpace(value) == "" {
		*m = result
		return nil
	}

	for _, pair := range strings.Split(value, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return fmt.Errorf("invalid key=value pair: %q", pair)
		}
		result[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	*m = result
	return nil
}

func (m *StringMapFlag) Type() string {
	return "stringMap"
}

func (m *StringMapFlag) Get() map[string]string {
	if m == nil || *m == nil {
		return map[string]string{}
	}
	return *m
}
