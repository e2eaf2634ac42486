// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// writeVersion rewrites the API version in the given file, keeping
// all other content as it was read. JSON and YAML files keep their
// key order, and YAML files keep their comments. TOML files are
// rewritten with sorted keys.
func writeVersion(f format, filename string, v Version) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		doc := &orderedJSON{}
		if err := f.open(doc, filename); err != nil {
			return err
		}
		ver, err := json.Marshal(map[string]int{"Major": v.Major, "Minor": v.Minor})
		if err != nil {
			return err
		}
		doc.object("OpenGL").set("Version", &orderedJSON{raw: ver})
		return f.save(doc, filename)
	case ".yaml", ".yml":
		doc := &yaml.Node{}
		if err := f.open(doc, filename); err != nil {
			return err
		}
		if err := setYAMLVersion(doc, v); err != nil {
			return err
		}
		return f.save(doc, filename)
	}
	doc := map[string]any{}
	if err := f.open(&doc, filename); err != nil {
		return err
	}
	gl, ok := doc["OpenGL"].(map[string]any)
	if !ok {
		gl = map[string]any{}
		doc["OpenGL"] = gl
	}
	gl["Version"] = map[string]any{"Major": v.Major, "Minor": v.Minor}
	return f.save(doc, filename)
}

// setYAMLVersion sets OpenGL.Version in a YAML document node.
func setYAMLVersion(doc *yaml.Node, v Version) error {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		*doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	gl := yamlMapValue(doc.Content[0], "OpenGL")
	ver := yamlMapValue(gl, "Version")
	return ver.Encode(map[string]int{"Major": v.Major, "Minor": v.Minor})
}

// yamlMapValue returns the value node for key in the mapping node m,
// adding an empty mapping if the key is absent or not a mapping.
func yamlMapValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			val := m.Content[i+1]
			if val.Kind != yaml.MappingNode {
				*val = yaml.Node{Kind: yaml.MappingNode}
			}
			return val
		}
	}
	val := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, val)
	return val
}

// orderedJSON is a JSON value whose objects keep their key order.
// Values other than objects are held as raw JSON.
type orderedJSON struct {
	keys []string
	vals map[string]*orderedJSON
	raw  json.RawMessage
}

func (o *orderedJSON) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		o.raw = append(json.RawMessage(nil), b...)
		return nil
	}
	o.vals = map[string]*orderedJSON{}
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		val := &orderedJSON{}
		if err := dec.Decode(val); err != nil {
			return err
		}
		o.set(key, val)
	}
	_, err := dec.Token()
	return err
}

func (o *orderedJSON) MarshalJSON() ([]byte, error) {
	if o.vals == nil {
		if o.raw == nil {
			return []byte("null"), nil
		}
		return o.raw, nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := o.vals[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// set sets the value of key, appending the key if it is new.
func (o *orderedJSON) set(key string, val *orderedJSON) {
	if o.vals == nil {
		o.vals = map[string]*orderedJSON{}
		o.raw = nil
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

// object returns the object value of key, replacing any other value.
func (o *orderedJSON) object(key string) *orderedJSON {
	if val, ok := o.vals[key]; ok && val.vals != nil {
		return val
	}
	val := &orderedJSON{vals: map[string]*orderedJSON{}}
	o.set(key, val)
	return val
}
