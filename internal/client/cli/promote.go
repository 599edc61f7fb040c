package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
)

// Flush delivers queued checkpoints to the server immediately, without
// waiting for the debounce interval.
func (a *App) Flush(ctx context.Context) error {
	if err := a.engine.Flush(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Queue flushed")
	return nil
}

// Promote archives the current draft as a durable version. Pending local
// edits are flushed first so the archived payload matches what the user
// last typed.
func (a *App) Promote(ctx context.Context) error {
	key, err := a.currentKey()
	if err != nil {
		log.Println(err.Error())
		return err
	}

	id, recordHash, err := a.engine.Promote(ctx, key)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Println("No draft to promote")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Promoted as version %s (record hash %s)\n", id, hex.EncodeToString(recordHash))
	return nil
}
