package main

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"

	"braces.dev/errtrace"
	"github.com/pelletier/go-toml/v2"
	"github.com/peterbourgon/ff/v3"
)

var _ ff.ConfigFileParser = configFileParser

// configFileParser reads -config files.
//
// TOML files map top-level keys to flag names.
// Arrays set a repeatable flag once per item.
// Files that aren't valid TOML are read with ff.PlainParser.
func configFileParser(r io.Reader, set func(name, value string) error) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var values map[string]any
	if err := toml.Unmarshal(body, &values); err != nil {
		return errtrace.Wrap(ff.PlainParser(bytes.NewReader(body), set))
	}

	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := setConfigValue(name, values[name], set); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func setConfigValue(name string, value any, set func(name, value string) error) error {
	switch value := value.(type) {
	case []any:
		for _, item := range value {
			if err := setConfigValue(name, item, set); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	case map[string]any:
		return errtrace.Wrap(fmt.Errorf("%v: tables are not supported", name))
	default:
		return errtrace.Wrap(set(name, fmt.Sprint(value)))
	}
}
