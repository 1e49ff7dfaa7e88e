// Package compileinfoprint is imported for the side effect of printing the
// build information of the running binary to os.Stderr.
package compileinfoprint

import "github.com/carbocation/mendelcross/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
