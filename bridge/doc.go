// Package bridge routes records from other logging facades into the
// topolog global logger, so libraries written against log/slog or zap are
// filtered by TOPO_LOG like everything else.
//
// Both bridges render attributes and fields as " key=value" suffixes of
// the message text. Output stays one text line per record.
//
//	slog.SetDefault(slog.New(bridge.NewSlogHandler("")))
//	zl := zap.New(bridge.NewZapCore(""), zap.AddCaller())
//
// An empty target means the calling package, as with the front-end.
package bridge
