// Package preview draws arranged widgets into a character grid so a layout
// can be checked in a terminal.
package preview
