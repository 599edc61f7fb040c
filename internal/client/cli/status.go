package cli

import (
	"context"
	"fmt"
	"log"
)

// Status prints connectivity, the current draft, the conflict policy,
// and the number of checkpoints waiting in the local queue.
func (a *App) Status(ctx context.Context) error {
	mode := a.Mode
	if mode == "" {
		mode = ModeDisabled
	}
	fmt.Printf("Connectivity: %s\n", mode)

	if a.form != "" {
		fmt.Printf("Current draft: %s/%s (schema %d)\n", a.form, a.object, a.schemaVersion)
	} else {
		fmt.Println("Current draft: none")
	}

	if a.adoptRemote {
		fmt.Println("Conflict policy: adopt server copy")
	} else {
		fmt.Println("Conflict policy: keep this device's copy")
	}

	n, err := a.engine.QueueLen(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Queued checkpoints: %d\n", n)
	return nil
}
