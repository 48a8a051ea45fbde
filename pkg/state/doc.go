// Package state inspects the on-disk state of candidate "current" links.
// It classifies each link as missing, healthy or broken, finds broken links
// across all candidates and removes them on request.
package state
