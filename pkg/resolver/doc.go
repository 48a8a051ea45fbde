// Package resolver decides which concrete version of a candidate an
// invocation operates on.
//
// Online, an omitted version is replaced by the catalog's default and the
// version is validated against the catalog. A version the catalog rejects is
// still accepted when the user points at a local build folder or when it is
// already installed. Offline, a version must be given and must already be
// installed (or come with a folder). A version string is never fabricated.
package resolver
