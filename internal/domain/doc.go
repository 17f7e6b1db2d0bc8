// Package domain contains the core domain model for linkledger.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// YAML parsing, net/http, the filesystem, or any markup parser. Infra/adapters
// map into/from these types.
package domain
