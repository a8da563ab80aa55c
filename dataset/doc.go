// Package dataset loads, saves and generates set collections.
//
// The blob name selects both the codec and the compression:
//
//	sets.csv        CSV, uncompressed
//	sets.tsv.gz     tab separated, gzip
//	sets.json.zst   JSON, zstd
//	sets.csv.lz4    CSV, lz4 frame
//
// Datasets are read from any blobstore.Store:
//
//	d, err := dataset.Load(ctx, blobstore.NewLocalStore("data"), "sets.csv.zst")
//	cover, err := setcover.Cover(d.Sets, setcover.ModeBitset)
package dataset
