// apps/go-server/assets/embed.go
//
// Files compiled into the binary:
//   - index.html: the single-page game served by the web front end.
//   - sql/*.sql: SQLite migrations for the best-score table.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed index.html sql/*.sql
var FS embed.FS

// IndexHTML returns the game page.
func IndexHTML() ([]byte, error) {
	return FS.ReadFile("index.html")
}

// Migrations exposes the sql directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
