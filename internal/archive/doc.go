// Package archive persists named run encodings so that sequences built from
// one invocation of the tool can be restored by the next.
//
// Two backends are available, selected by config.Archive.Backend:
//
//   - pebble: an embedded LSM store under DataDir/pebble, keys prefixed
//     with "runs/", with an always|interval|never fsync policy;
//   - sqlite: a single DataDir/runs.db file holding a runs table.
//
// Records are stored as JSON encoded sequence.Record values. SaveStore and
// LoadStore move a whole sequence.Store in and out of an Archive.
package archive
