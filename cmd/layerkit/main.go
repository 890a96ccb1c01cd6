// Package main provides the layerkit CLI for inspecting and managing
// control layout documents.
//
// Usage:
//
//	layerkit validate <file>                 Check a layout loads and fits its limits
//	layerkit migrate <file> [-o out]         Upgrade a layout to the current format
//	layerkit inspect <file> [--locale tag]   Print layers, widgets and styles
//	layerkit arrange <file> -W 1920 -H 1080  Print where every widget is placed
//	layerkit new <file> --name "My layout"   Create an empty layout
//	layerkit list                            List the layout library
//	layerkit select <file-name>              Select a library layout
//	layerkit import <file>                   Copy a layout into the library
//	layerkit delete <file-name>              Remove a library layout
package main

import (
	"os"

	"github.com/grindlemire/layerkit/internal/debug"
)

const version = "0.1.0"

func main() {
	err := rootCmd.Execute()
	debug.Close()
	if err != nil {
		os.Exit(1)
	}
}
