// Package config provides the key-value configuration lookup used by the
// renderer.
//
// A Lookup answers Get(key) with a value or absence. Sources:
//   - Properties: an immutable key-value set, usually loaded from a YAML
//     file whose nested maps are flattened to dotted keys (see LoadFile)
//   - EnvLookup: environment variables with relaxed binding, so that
//     soffit.hello.cache.max-age is read from SOFFIT_HELLO_CACHE_MAX_AGE
//   - Chain: several lookups consulted in order, first hit wins
//
// Settings reads the renderer's own server settings from a Lookup.
package config
