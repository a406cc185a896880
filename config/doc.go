// Package config defines the settings for a figkit render.
//
// A Config can be read from a YAML, TOML or JSON file with Load, overridden
// from FIGKIT_* environment variables with LoadFromEnv, and described as a
// JSON Schema with Schema for editor support.
//
// Example config.toml:
//
//	template = "page.ps.tmpl"
//	data     = ["site.yaml", "page.toml"]
//	figure   = "frame.yaml"
//	output   = "page.ps"
//
//	[vars]
//	title = "Frame"
package config
