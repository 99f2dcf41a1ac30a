// compileinfoprint is imported for the side effect of logging the compileinfo
// of the running binary
package compileinfoprint

import "github.com/carbocation/progvar/compileinfo"

func init() {
	compileinfo.Log()
}
