package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/omniform/docptr"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: remove requires a pointer argument", cli.ErrUsage)
	}
	ptr := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := cfg.readDoc(file)
	if err != nil {
		return err
	}
	before := ""
	if cfg.D {
		before = cfg.docText(doc)
	}
	affected, err := docptr.RemoveAll(doc, ptr, docptr.WithRoot(cfg.Root))
	if err != nil {
		return fmt.Errorf("error removing %s from %s: %w", ptr, file, err)
	}
	for _, p := range affected {
		fmt.Fprintf(cc.Out, "%s\n", cfg.pointerText(p))
	}
	if cfg.D {
		printDiff(cc.Out, before, cfg.docText(doc))
		return nil
	}
	return cfg.writeDoc(cc.Out, doc)
}
