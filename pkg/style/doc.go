// Package style holds the terminal styling of the sdk command.
//
// Styles are defined in the embedded styles.yaml with adaptive light/dark
// colors and looked up by semantic name ("success", "warning", "candidate",
// "version", ...). A Printer renders messages in those styles, or as plain
// text when output is not a color-capable terminal.
package style
