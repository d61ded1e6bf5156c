// Package config handles sitemap entry lists loaded from YAML and validated
// using struct tags.
//
// URL syntax checking happens here, via the validator's url tag; the writer
// in the root package renders whatever locations it is handed.
package config
