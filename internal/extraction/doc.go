// Package extraction turns a document-analysis block graph into shipping fields.
//
// Resolve walks the graph once and produces ordered key/value text pairs plus the
// document's LINE texts. MapFields assigns those pairs to the fixed canonical
// bill-of-lading fields by case-insensitive keyword containment. Neither step
// performs I/O or returns an error; unresolvable pairs are dropped.
package extraction
