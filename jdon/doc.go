// Package jdon implements JDON, a compact text format for the JSON data
// model that trades JSON's heavy delimiter syntax for pipes and colons.
//
// JDON is designed to be:
//   - Isomorphic to JSON (null, boolean, number, string, object, array)
//   - Delimiter-cheap (no quoted keys, bare strings, one-char separators)
//   - Columnar for arrays of uniform objects (one segment per shared key)
//   - Permissive on input (malformed pieces degrade to strings, not errors)
//
// # Syntax
//
//	Object:    {name:Alice|age:30}
//	Array:     [1,2,3]
//	Columnar:  [id:1,2,3|name:Alice,Bob,Charlie]
//	String:    bare_word or "quoted: needs, escaping"
//	Literals:  null true false undefined NaN Infinity -Infinity
//
// A columnar array is surface syntax only: parsing it yields an ordinary
// row-major array of objects, and serializing an array of objects that
// share one key set produces the columnar form again.
//
// # Example
//
//	[
//	  id:1,2,3|
//	  name:Alice,Bob,Charlie|
//	  active:true,false,true
//	]
//
// parses to the same value as the JSON
//
//	[{"id":1,"name":"Alice","active":true},
//	 {"id":2,"name":"Bob","active":false},
//	 {"id":3,"name":"Charlie","active":true}]
//
// # Error Tolerance
//
// Parsing degrades rather than fails:
//   - Segments without a colon inside an object are skipped
//   - Unterminated quotes swallow the rest of the span as string content
//   - Uneven columnar columns are backfilled with null
//
// Only mismatched brackets ({ without }, [ without ]) are fatal.
package jdon
