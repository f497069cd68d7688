// Package domain contains the core domain model for orchard.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
package domain
