// Package datastore manages installed versions under the candidates
// directory. It owns the layout
//
//	<candidates>/<candidate>/<version>/
//	<candidates>/<candidate>/current -> <version>
//
// and enforces that the current link, when present, points at one of the
// candidate's own version directories. Broken current links found while
// reading are logged and treated as absent.
package datastore
