package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// describeCmd prints the structure of the kernel a YAML spec describes.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the structure of a compound kernel spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadKernelSpec(kernelPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		k, err := spec.build()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		fmt.Printf("dimension: %d\n", k.Dim())
		fmt.Printf("parts: %d\n", k.NumParts())
		for i := 0; i < k.NumParts(); i++ {
			in := k.InputSlice(i)
			ps := k.ParamSlice(i)
			fmt.Printf("  part %d: %s, columns [%d, %d), params [%d, %d)\n",
				i, spec.Parts[i].Type, in.Start, in.End, ps.Start, ps.End)
		}
		fmt.Printf("parameters: %d\n", k.NumParams())
		for i, name := range k.ParamNames() {
			fmt.Printf("  %2d: %s = %g\n", i, name, k.Params()[i])
		}
		c := k.Constraints()
		fmt.Printf("constraints: %d positive, %d negative, %d bounded, %d fixed, %d tied groups\n",
			len(c.Positive), len(c.Negative), len(c.Bounded), len(c.Fixed), len(c.Tied))
	},
}
