package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/omniform/docptr"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
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
	res, err := docptr.ApplyJSONPatch(doc, patchData)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if cfg.D {
		printDiff(cc.Out, before, cfg.docText(res))
		return nil
	}
	return cfg.writeDoc(cc.Out, res)
}
