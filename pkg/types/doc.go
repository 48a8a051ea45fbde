// Package types defines the interfaces and small value types shared across
// the version manager: the filesystem abstraction, the path provider and the
// description of an installed candidate version.
package types
