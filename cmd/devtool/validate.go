package main

import (
	"context"
	"flag"
	"io"

	"github.com/rethesda/soulsy/internal/bootstrap"
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/equippable"
)

// ValidateCommand checks the catalog and keyword files without starting the server
type ValidateCommand struct {
	out io.Writer
}

func (c *ValidateCommand) Name() string {
	return "validate"
}

func (c *ValidateCommand) Description() string {
	return "Validate the item catalog and keyword overrides"
}

func (c *ValidateCommand) Run(args []string) error {
	var paths catalogFlags
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(c.out)
	paths.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader(c.out, "Validating configuration")
	ctx := context.Background()

	inspector, err := bootstrap.LoadKeywords(ctx, paths.keywords)
	if err != nil {
		PrintError(c.out, "Keywords: %v", err)
		return err
	}
	PrintSuccess(c.out, "Keywords OK")

	store, err := bootstrap.LoadCatalog(ctx, paths.items)
	if err != nil {
		PrintError(c.out, "Catalog: %v", err)
		return err
	}
	PrintSuccess(c.out, "Catalog OK: %d items, %d relevant", store.Len(), len(store.Relevant()))

	classifier := equippable.NewClassifier(inspector)
	fallbacks := 0
	for _, it := range store.Relevant() {
		slot := classifier.SlotType(it)
		if slot != domain.SlotMisc && classifier.Icon(slot, it) == domain.IconDefault {
			PrintWarning(c.out, "%s (%s) has no specific %s icon", it.Base().Spec, it.Base().Name, slot)
			fallbacks++
		}
	}
	if fallbacks == 0 {
		PrintSuccess(c.out, "Every relevant item has a specific icon")
	}
	return nil
}
