// Package config loads topolog settings from an optional TOML file and the
// environment, and reloads them when the file changes.
//
//	[log]
//	filter = "all=info,net=trace"
//	color = "auto"     # always | never | auto
//	output = "stderr"  # stderr | stdout, comma separated for both
//
// Environment variables override the file: TOPO_LOG replaces filter,
// TOPO_LOG_COLOR and TOPO_LOG_OUTPUT replace color and output. A missing
// file is not an error.
package config
