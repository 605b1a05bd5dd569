// Package main provides the Graft CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Graft %s\n", version)
		return
	}

	fmt.Println("Graft - Reverse-Mode Autodiff over Tensor Graphs")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Examples live under examples/: xor, textclass")
}
