// Package ccqa converts archived community Q&A pages annotated with
// schema.org microdata into structured, line-delimited JSON training
// records, and reshapes those records into closed-book and passage
// retrieval training formats.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, whatlanggo/).
package ccqa
