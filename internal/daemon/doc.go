// Package daemon resolves bitcoin.conf-style daemon configuration into a
// presentation-ready entry list.
//
// The file is flat INI: global keys at the top, optionally restated under
// the network sections [main], [test], [signet], and [regtest]. Resolution
// walks a fixed scope order (global first, then the network sections in
// that exact sequence) and the first scope that defines a key wins. Keys
// never found in the file surface with their schema default and
// Enabled=false; keys the schema does not know are appended after all
// schema entries with permissively inferred values.
package daemon
