package cli

import (
	"context"
	"fmt"
)

// Backup exports the current recipe collection to the configured bucket.
func (a *App) Backup(ctx context.Context) error {
	key, err := a.exporter.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Backup uploaded: %s\n", key)
	return nil
}
