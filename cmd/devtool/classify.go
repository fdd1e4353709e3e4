package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/rethesda/soulsy/internal/actor"
	"github.com/rethesda/soulsy/internal/bootstrap"
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/equippable"
)

// ClassifyCommand prints the classification of every catalog entry
type ClassifyCommand struct {
	out io.Writer
}

func (c *ClassifyCommand) Name() string {
	return "classify"
}

func (c *ClassifyCommand) Description() string {
	return "Classify every catalog item and print slot, icon and flags"
}

func (c *ClassifyCommand) Run(args []string) error {
	var paths catalogFlags
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(c.out)
	paths.register(fs)
	asJSON := fs.Bool("json", false, "Print JSON instead of a table")
	relevantOnly := fs.Bool("relevant", false, "Only items the overlay can show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	inspector, err := bootstrap.LoadKeywords(ctx, paths.keywords)
	if err != nil {
		return err
	}
	store, err := bootstrap.LoadCatalog(ctx, paths.items)
	if err != nil {
		return err
	}
	registry := actor.NewRegistry()
	if err := bootstrap.SeedInventory(ctx, store, registry); err != nil {
		return err
	}

	items := store.All()
	if *relevantOnly {
		items = store.Relevant()
	}

	classifier := equippable.NewClassifier(inspector, equippable.WithCounter(registry.Counter(domain.PlayerActor)))
	entries := make([]domain.Classification, 0, len(items))
	for _, it := range items {
		entries = append(entries, classifier.Classify(ctx, it))
	}

	if *asJSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Form", "Name", "Slot", "Icon", "Two-handed", "Count", "Instant"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, e := range entries {
		count := ""
		if e.HasCount {
			count = strconv.Itoa(e.Count)
		}
		table.Append([]string{
			e.Spec,
			e.Name,
			e.SlotType.String(),
			e.Icon.String(),
			strconv.FormatBool(e.TwoHanded),
			count,
			strconv.FormatBool(e.InstantCast),
		})
	}
	table.Render()
	fmt.Fprintf(c.out, "%d items\n", len(entries))
	return nil
}
