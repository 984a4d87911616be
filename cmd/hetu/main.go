package main

import (
	"fmt"
	"os"

	"github.com/hetu-script/hetu-go/cmd/hetu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
