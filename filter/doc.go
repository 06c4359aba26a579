// Package filter parses the TOPO_LOG configuration string and answers
// whether a record should be emitted.
//
// The grammar is a comma separated list of entries, each either
// "target=level" or a bare "target" (which means info):
//
//	TOPO_LOG=all=info,net=trace,github.com/acme/db=debug
//
// Level tokens are trace/5, debug/4, info/3, warn/2 and error/1. Any
// other token is read as info; parsing never fails. The target "all" sets
// the default level; without it the default is off.
//
// The effective threshold of a target is the more verbose of its own
// level and the default, so the default acts as a floor:
//
//	f := filter.Parse("net=error,all=debug")
//	f.Threshold("net") // DEBUG, not ERROR
package filter
