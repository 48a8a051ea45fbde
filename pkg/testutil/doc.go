// Package testutil provides utilities for testing sdkman components.
//
// Key components:
//   - TestEnvironment: an isolated install root in a temp directory with a
//     manifest, helpers to install versions and set or break current links
//   - CatalogServer: an httptest-backed fake of the remote catalog that
//     counts requests
//   - FailingFS: a types.FS wrapper that injects errors for chosen
//     operations and paths
//
// Install-state tests run against the real filesystem since symlink
// semantics are what is being tested.
package testutil
