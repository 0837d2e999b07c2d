// Package loadshed converts raw load-shedding schedule records, as
// received from upstream feeds, into canonical timezone-qualified
// events. Raw records carry wall-clock time strings without a UTC
// offset; the conversions here attach the region's fixed offset and
// resolve calendar ambiguities such as monthly windows that run over
// midnight. Conversions fail loudly: a record that does not parse is
// surfaced as an error rather than coerced into a plausible timestamp.
package loadshed
