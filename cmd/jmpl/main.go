package main

import (
	"fmt"
	"os"

	"github.com/Jogll1/J-JMPL/cmd/jmpl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
