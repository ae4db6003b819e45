// Package retitle repairs titles and author attribution in a harvested
// archive of Becker-Posner blog posts. The archive is a directory of HTML
// files plus a JSON index; retitle derives better titles from each file,
// rewrites the title markup in place and updates the index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, slog/).
package retitle
