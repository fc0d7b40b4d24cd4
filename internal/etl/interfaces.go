package etl

// Extractor reads one raw source extract in full. The pipeline is
// single-batch: a source is materialized once, at the start of a run.
type Extractor interface {
	Extract() (Table, error)
}

// Loader hands the final unified table to the destination store with
// full-reload semantics: prior contents are replaced, never merged.
type Loader interface {
	Load(t Table) error
}
