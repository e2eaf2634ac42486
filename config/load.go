// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/base/fsx"
	"cogentcore.org/orbit/base/iox/jsonx"
	"cogentcore.org/orbit/base/iox/tomlx"
	"cogentcore.org/orbit/base/iox/yamlx"
	"cogentcore.org/orbit/base/reflectx"
)

// format is a scene file encoding.
type format struct {
	open func(v any, filename string) error
	save func(v any, filename string) error
}

// formatFor returns the encoding for the given file name extension.
func formatFor(filename string) (format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return format{jsonx.Open, jsonx.Save}, nil
	case ".toml":
		return format{tomlx.Open, tomlx.Save}, nil
	case ".yaml", ".yml":
		return format{yamlx.Open, yamlx.Save}, nil
	}
	return format{}, fmt.Errorf("config: unsupported scene file type %q; use .json, .toml or .yaml", filepath.Ext(filename))
}

// Open loads a scene configuration from the given file, with the format
// given by its extension. Unset fields take their `default:` tag values,
// asset paths are resolved relative to the file, and the result is
// validated. If a valid file requests an API version below [MinVersion],
// the version is raised and written back to the file.
func Open(filename string) (*Config, error) {
	f, err := formatFor(filename)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := reflectx.SetFromDefaultTags(cfg); err != nil {
		return nil, err
	}
	if err := f.open(cfg, filename); err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", filename, err)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(abs)

	raise := cfg.OpenGL.Version.Less(MinVersion)
	if raise {
		slog.Info("raising requested API version", "from", cfg.OpenGL.Version, "to", MinVersion, "file", filename)
		cfg.OpenGL.Version = MinVersion
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid scene %q: %w", filename, err)
	}
	// an invalid file is left as the user wrote it
	if raise {
		errors.Log(writeVersion(f, filename, MinVersion))
	}
	return cfg, nil
}

// resolve fills in zero scales and colors and resolves asset
// paths against the config directory.
func (c *Config) resolve() error {
	var errs []error
	for _, el := range []EntityList{c.Lights, c.Objects} {
		for i := range el {
			e := &el[i]
			if e.Scale == (Vector{}) {
				e.Scale = Vector{1, 1, 1}
			}
			if e.Color == (Color{}) {
				e.Color = Color{1, 1, 1}
			}
			for _, p := range []*string{&e.ObjFile, &e.Texture, &e.NormalMap, &e.Shader.Vertex, &e.Shader.Fragment} {
				rp, err := fsx.ResolvePath(c.Dir, *p)
				if err != nil {
					errs = append(errs, fmt.Errorf("entity %q: %w", e.Name, err))
					continue
				}
				*p = rp
			}
		}
	}
	out, err := fsx.ResolvePath("", c.Render.Output)
	if err != nil {
		errs = append(errs, err)
	}
	c.Render.Output = out
	return errors.Join(errs...)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
