// Package zengin provides lookup and search over the Zengin code system,
// the Japanese banking association's numbering of banks (4 digits) and
// their branches (3 digits).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, slog/).
package zengin
