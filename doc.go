// feedkit is a small kit for turning tabular track metadata into Vespa
// feed files. It contains the conversion pipeline itself plus helpers
// for getting the raw data from wherever it happens to live.
//
// The pipeline has three stages, each behind a small interface or type
// in this package, with concrete implementations in sub-packages:
//
// 1. Source
//
//    A feedkit.Source is where records come from. Track datasets show
//    up as CSV files on disk, objects in S3 buckets, or JSON messages
//    on Kafka topics; a Source hides all of that behind a single
//    method returning one record at a time as a map of column name to
//    value. Sources which read files are usually built on a RawSource,
//    which hands out one named reader per underlying file or object.
//
// 2. Transformer
//
//    The Transformer turns one raw record into one feed envelope: it
//    fills missing text fields with empty strings, derives the
//    searchable text by concatenating artists, album, track name and
//    genre, projects down to the three indexed fields, and wraps the
//    result in a Vespa put envelope. The transformation is fixed and
//    stateless - all the schema knowledge lives in Track and Document.
//
// 3. Feed output
//
//    The vespa sub-package serializes envelopes as line-delimited JSON,
//    one complete document per line, which is the format the Vespa
//    feed API ingests. Nothing in this repository talks to a running
//    Vespa cluster; the output is always a file.
package feedkit
