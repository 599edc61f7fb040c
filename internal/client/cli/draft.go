package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

var errNoDraftSelected = errors.New("no draft selected, run 'use' first")

func (a *App) currentKey() (models.DraftKey, error) {
	if a.form == "" || a.object == "" {
		return models.DraftKey{}, errNoDraftSelected
	}
	return models.DraftKey{FormSlug: a.form, ObjectID: a.object}, nil
}

// Use prompts for a form slug and an object id and makes that draft the
// current one. An optional schema version may be entered; an empty answer
// keeps the previous value (initially 1).
func (a *App) Use(ctx context.Context) error {
	form, err := getSimpleText(a.reader, "Form slug", os.Stdout)
	if err != nil {
		return err
	}
	if form == "" {
		fmt.Println("Form slug cannot be empty")
		return nil
	}

	object, err := getSimpleText(a.reader, "Object id", os.Stdout)
	if err != nil {
		return err
	}
	if object == "" {
		fmt.Println("Object id cannot be empty")
		return nil
	}

	sv, err := getSimpleText(a.reader, "Schema version (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if sv != "" {
		n, err := strconv.ParseInt(sv, 10, 64)
		if err != nil || n < 1 {
			fmt.Println("Schema version must be a positive number")
			return nil
		}
		a.schemaVersion = n
	}
	if a.schemaVersion == 0 {
		a.schemaVersion = 1
	}

	a.form = form
	a.object = object

	fmt.Printf("Working on %s/%s\n", a.form, a.object)
	return nil
}

// Edit collects form fields and a step number, then records the edit with
// the sync engine. The checkpoint is delivered after the debounce interval
// elapses, or queued locally if the server is unreachable.
func (a *App) Edit(ctx context.Context) error {
	key, err := a.currentKey()
	if err != nil {
		log.Println(err.Error())
		return err
	}

	stepText, err := getSimpleText(a.reader, "Step number", os.Stdout)
	if err != nil {
		return err
	}
	step, err := strconv.ParseInt(stepText, 10, 64)
	if err != nil || step < 0 {
		fmt.Println("Step must be a non-negative number")
		return nil
	}

	lines, err := GetFields(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	fields := make(map[string]string, len(lines))
	for _, line := range lines {
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Printf("Skipping malformed field %q\n", line)
			continue
		}
		fields[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	if len(fields) == 0 {
		fmt.Println("No fields entered, nothing recorded")
		return nil
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	a.engine.RecordEdit(ctx, key, payload, step, a.schemaVersion)
	fmt.Printf("Recorded %d field(s) at step %d\n", len(fields), step)
	return nil
}

// Load fetches the server copy of the current draft and prints it.
func (a *App) Load(ctx context.Context) error {
	key, err := a.currentKey()
	if err != nil {
		log.Println(err.Error())
		return err
	}

	remote, err := a.engine.Load(ctx, key)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if remote == nil {
		fmt.Println("No draft on the server")
		return nil
	}

	fmt.Printf("Version %d, step %d, schema %d\n", remote.Version, remote.Step, remote.SchemaVersion)

	var fields map[string]string
	if err := json.Unmarshal(remote.Payload, &fields); err != nil {
		fmt.Printf("Payload: %s\n", string(remote.Payload))
		return nil
	}
	for name, value := range fields {
		fmt.Printf("  %s = %s\n", name, value)
	}
	return nil
}

// Discard drops the current draft locally and on the server.
func (a *App) Discard(ctx context.Context) error {
	key, err := a.currentKey()
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if err := a.engine.Discard(ctx, key); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Println("Nothing to discard")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	fmt.Println("Draft discarded")
	return nil
}

// Prefer chooses the conflict policy applied when another device has
// checkpointed the same draft: "mine" keeps this device's copy, "server"
// adopts the newer server copy.
func (a *App) Prefer(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "On conflict, prefer (mine/server)", os.Stdout)
	if err != nil {
		return err
	}

	switch strings.ToLower(answer) {
	case "mine":
		a.adoptRemote = false
		fmt.Println("Conflicts keep this device's copy")
	case "server":
		a.adoptRemote = true
		fmt.Println("Conflicts adopt the server copy")
	default:
		fmt.Println("Answer 'mine' or 'server'")
	}
	return nil
}
