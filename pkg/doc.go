// Package pkg provides the core libraries for quivertool.
//
// # Overview
//
// Quivertool computes invariants of quiver representations: reduced path
// counts modulo relations, dimension vectors of projective and injective
// indecomposables, and the Auslander-Reiten quiver. The pkg directory is
// organized into five main areas:
//
//  1. [rewrite] - Generic sequence rewriting (path normalization)
//  2. [quiver] - Quivers with relations, paths, indecomposables
//  3. [dimvec] and [ar] - Dimension vectors and the AR quiver builder
//  4. [quiverio] and [render] - Definition files, JSON results, diagrams
//  5. [cache] and [errors] - Result caching and boundary error types
//
// # Architecture
//
// The typical data flow through quivertool:
//
//	quiver.toml definition
//	         ↓
//	quiverio.Definition → quiver.Quiver
//	         ↓
//	ar.Build (projectives, injectives, radicals, meshes)
//	         ↓
//	ar.Result → quiverio JSON / render DOT, SVG, PNG
//
// [rewrite]: github.com/quiverlab/quivertool/pkg/rewrite
// [quiver]: github.com/quiverlab/quivertool/pkg/quiver
// [dimvec]: github.com/quiverlab/quivertool/pkg/dimvec
// [ar]: github.com/quiverlab/quivertool/pkg/ar
// [quiverio]: github.com/quiverlab/quivertool/pkg/quiverio
// [render]: github.com/quiverlab/quivertool/pkg/render
// [cache]: github.com/quiverlab/quivertool/pkg/cache
// [errors]: github.com/quiverlab/quivertool/pkg/errors
package pkg
