// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/config"
	"cogentcore.org/orbit/raster"
	"cogentcore.org/orbit/xyz"
	"cogentcore.org/orbit/xyz/io/obj"
	"cogentcore.org/orbit/xyz/texture"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// assets loads meshes and textures once per file.
type assets struct {
	meshes   map[string]*obj.Mesh
	textures map[string]*texture.Texture
}

func (as *assets) mesh(filename string) (*obj.Mesh, error) {
	if ms, ok := as.meshes[filename]; ok {
		return ms, nil
	}
	ms, err := obj.Open(filename)
	if err != nil {
		return nil, err
	}
	as.meshes[filename] = ms
	return ms, nil
}

// texture returns nil for an empty filename.
func (as *assets) texture(filename string) (*texture.Texture, error) {
	if filename == "" {
		return nil, nil
	}
	if tx, ok := as.textures[filename]; ok {
		return tx, nil
	}
	tx, err := texture.Open(filename)
	if err != nil {
		return nil, err
	}
	as.textures[filename] = tx
	return tx, nil
}

// BuildScene creates the scene of the configuration, with solids drawn
// by the given renderer. Lights are emissive, the skybox is unlit, and
// all other objects are lit. The scene is resolved, and an error from
// resolving is logged, since the scene is still usable without orbits.
func BuildScene(ctx context.Context, cfg *config.Config, r *raster.Renderer) (*xyz.Scene, error) {
	ctx, span := tracer.Start(ctx, "BuildScene")
	defer span.End()

	sc := xyz.NewScene(cfg.Window.Title)
	as := &assets{meshes: map[string]*obj.Mesh{}, textures: map[string]*texture.Texture{}}
	add := func(kind xyz.Kind, ce *config.Entity) error {
		_, espan := tracer.Start(ctx, "entity", trace.WithAttributes(
			attribute.String("name", ce.Name),
			attribute.String("kind", kind.String()),
		))
		defer espan.End()
		e, err := newEntity(as, r, kind, ce)
		if err != nil {
			espan.RecordError(err)
			espan.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("%s %q: %w", kind, ce.Name, err)
		}
		espan.SetAttributes(attribute.String("role", e.Role.String()))
		sc.Add(e)
		return nil
	}
	for i := range cfg.Lights {
		if err := add(xyz.KindLight, &cfg.Lights[i]); err != nil {
			return nil, err
		}
	}
	for i := range cfg.Objects {
		if err := add(xyz.KindObject, &cfg.Objects[i]); err != nil {
			return nil, err
		}
	}
	errors.Log(sc.Resolve())
	span.SetAttributes(attribute.Bool("orbital", sc.Orbital()))
	slog.Info("loaded scene", "name", sc.Name, "lights", len(sc.Lights), "objects", len(sc.Objects), "meshes", len(as.meshes), "textures", len(as.textures))
	return sc, nil
}

func newEntity(as *assets, r *raster.Renderer, kind xyz.Kind, ce *config.Entity) (*xyz.Entity, error) {
	role, err := ce.EntityRole()
	if err != nil {
		return nil, err
	}
	ms, err := as.mesh(ce.ObjFile)
	if err != nil {
		return nil, err
	}
	tex, err := as.texture(ce.Texture)
	if err != nil {
		return nil, err
	}
	nmap, err := as.texture(ce.NormalMap)
	if err != nil {
		return nil, err
	}
	shading := raster.Lit
	switch {
	case kind == xyz.KindLight:
		shading = raster.Emissive
	case role == xyz.RoleSkybox:
		shading = raster.Unlit
	}
	s := r.NewSolid(ms, tex, nmap, ce.Color.RGBA(), shading)
	return xyz.NewEntity(ce.Name, kind, role, ce.BaseMatrix(), s), nil
}
