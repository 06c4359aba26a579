// Command topolog inspects and exercises TOPO_LOG configurations.
//
//	topolog check net db          # effective thresholds
//	echo hi | topolog emit -l warn
//	topolog watch -c topolog.toml --metrics-addr :9100
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
