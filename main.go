// Entry point; all CLI handling lives in the Cobra command tree under cmd/.
package main

import (
	"github.com/wenjingk/GPy/cmd"
)

func main() {
	cmd.Execute()
}
