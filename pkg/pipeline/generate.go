//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/openchem/molmap --repository.default-branch master --repository.path /pkg/pipeline

// Package pipeline drives the record finalization pass: partial records are
// grouped by conformer ID, merged, normalized, assigned a fate, and rolled
// up into per-topology statistics. Groups are independent of each other, so
// the pass fans out over a bounded worker pool.
package pipeline
