// Command nanolca is an interactive life-cycle assessment calculator for
// water-based nanofluids.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rshade/nanolca/internal/cli"
	"github.com/rshade/nanolca/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitCode(err)
	}
	return 0
}
