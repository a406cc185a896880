// Package loader reads templates, substitution data and figures from files
// and watches those files for changes.
//
// File formats are chosen by extension through a decoder registry. YAML
// (.yaml, .yml), TOML (.toml) and JSON (.json) are registered by default:
//
//	data, err := loader.LoadData("vars.toml")
//	fig, err := loader.LoadFigure("frame.yaml")
//
// Template files may start with YAML frontmatter holding default variables:
//
//	---
//	title: Untitled
//	---
//	%%Title: {{title}}
//	{{figure}}
//
// Watch reports file changes using fsnotify, falling back to polling when
// no watcher can be created:
//
//	w := loader.NewWatcher([]string{"page.ps.tmpl", "frame.yaml"})
//	for ev := range w.Watch(ctx) {
//	    // re-render ev.Path
//	}
package loader
