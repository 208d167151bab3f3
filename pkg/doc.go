// Package pkg provides the core libraries for Orgchart rendering.
//
// # Overview
//
// Orgchart turns a declarative YAML description of an organization into a
// Graphviz chart. The pkg directory is organized into four main areas:
//
//  1. [org] - Domain logic (schema loading, validation, graph construction)
//  2. [render] - Chart generation (styling, DOT serialization, PNG rasterization)
//  3. [pipeline] - Orchestration (load → build → render)
//  4. [errors] - Structured error codes shared across the surface
//
// # Architecture
//
// The typical data flow through Orgchart:
//
//	YAML org description
//	         ↓
//	    [org] package (decode + validate + build graph)
//	         ↓
//	    [render/styles] package (status and relation styling)
//	         ↓
//	    [render/dot] package (deterministic DOT text)
//	         ↓
//	    [render/raster] package (layout engine → PNG)
//
// # Quick Start
//
//	doc, err := org.Load("team.yaml")
//	if err != nil {
//	    return err
//	}
//	g, err := org.Build(doc, org.BuildOptions{})
//	if err != nil {
//	    return err
//	}
//	png, err := raster.Render(ctx, g, render.Default())
package pkg
