// Package model defines the manifest data types shared across the
// lattice toolchain.
//
// This package contains type definitions and identifier normalization
// only. All other internal packages import model; model imports nothing
// internal. This keeps it the foundational layer with no circular
// dependencies.
//
// All JSON tags use snake_case.
package model
