// Command avlctl drives avl trees from the command line: it replays
// scenario files, prints traversals of ad-hoc key lists, and draws trees.
//
//	avlctl run [file ...]                     # built-in course data when no file is given
//	avlctl walk --order level 10 20 30 40     # insert keys, print a traversal
//	avlctl show -- 9 5 10 0 6 11 -1 1 2       # ASCII drawing; "--" lets keys be negative
//	avlctl export course.yaml                 # write the built-ins as YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

var version = "dev"

func main() {
	cmd := newRootCmd(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
