package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/omniform/docptr"
	"github.com/omniform/docptr/ir"
)

func copyCmd(cfg *CopyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Copy.Parse(cc, args)
	if err != nil {
		cfg.Copy.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: copy requires a pointer and a source file", cli.ErrUsage)
	}
	ptr := args[0]
	source, err := cfg.readDoc(args[1])
	if err != nil {
		return err
	}
	target := ir.Object()
	if len(args) > 2 {
		target, err = cfg.readDoc(args[2])
		if err != nil {
			return err
		}
	}
	res, err := docptr.CopyAll(source, ptr, target, docptr.WithRoot(cfg.Root))
	if err != nil {
		return fmt.Errorf("error copying %s from %s: %w", ptr, args[1], err)
	}
	return cfg.writeDoc(cc.Out, res)
}
