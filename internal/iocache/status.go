package iocache

import (
	"fmt"
	"io"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
)

// PrintStoreStatus prints record store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Schema Version: %d\n", status.SchemaVersion)
	_, _ = fmt.Fprintf(w, "Disturbances: %d\n", status.TotalRecords)
	_, _ = fmt.Fprintf(w, "Remedial Actions: %d\n", status.TotalActions)
	_, _ = fmt.Fprintf(w, "Table Size: %d bytes\n", status.TableSizeBytes)
}

// PrintMigrationReport prints the effect of a migration.
func PrintMigrationReport(w io.Writer, r MigrationReport) {
	if !r.Changed {
		_, _ = fmt.Fprintf(w, "Schema already at version %d, nothing to do.\n", r.To)
		return
	}
	_, _ = fmt.Fprintf(w, "Migrated schema from version %d to %d.\n", r.From, r.To)
}
