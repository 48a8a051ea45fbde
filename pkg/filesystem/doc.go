// Package filesystem provides the OS-backed implementation of types.FS used
// by the install-state code.
package filesystem
