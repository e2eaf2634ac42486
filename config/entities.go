// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EntityList is a list of entities. In JSON and YAML files it may be
// given either as an array or as an object keyed by index ("0", "1", ...),
// in which case entities are read in index order up to the first
// missing index.
type EntityList []Entity

func (el *EntityList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*el = nil
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var es []Entity
		if err := json.Unmarshal(b, &es); err != nil {
			return err
		}
		*el = es
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	es := make([]Entity, 0, len(m))
	for i := 0; ; i++ {
		raw, ok := m[strconv.Itoa(i)]
		if !ok {
			break
		}
		var e Entity
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
		es = append(es, e)
	}
	warnSkipped(len(m), len(es))
	*el = es
	return nil
}

func (el *EntityList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var es []Entity
		if err := value.Decode(&es); err != nil {
			return err
		}
		*el = es
		return nil
	case yaml.MappingNode:
		m := make(map[string]*yaml.Node, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			m[value.Content[i].Value] = value.Content[i+1]
		}
		es := make([]Entity, 0, len(m))
		for i := 0; ; i++ {
			n, ok := m[strconv.Itoa(i)]
			if !ok {
				break
			}
			var e Entity
			if err := n.Decode(&e); err != nil {
				return fmt.Errorf("entity %d: %w", i, err)
			}
			es = append(es, e)
		}
		warnSkipped(len(m), len(es))
		*el = es
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*el = nil
			return nil
		}
	}
	return fmt.Errorf("line %d: entities must be a list or an index-keyed map", value.Line)
}

func warnSkipped(keys, read int) {
	if keys > read {
		slog.Warn("ignoring entities after the first missing index", "read", read, "ignored", keys-read)
	}
}
