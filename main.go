// Package main is the entry point for handcheck.
package main

import "github.com/mouse-blink/handcheck/cmd"

func main() {
	cmd.Execute()
}
