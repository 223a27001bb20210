//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/openchem/molmap --repository.default-branch master --repository.path /

// Package molmap curates the small molecule conformer collection: it merges
// the partial records the extraction stages produce, grades and fates the
// results, filters them down to release tiers, and rolls per-topology
// statistics up alongside.
package molmap
