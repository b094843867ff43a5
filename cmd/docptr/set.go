package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/omniform/docptr"
	"github.com/omniform/docptr/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a pointer and a value", cli.ErrUsage)
	}
	ptr := args[0]
	value, err := parseValue(args[1])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}
	doc, err := cfg.readDoc(file)
	if err != nil {
		return err
	}
	before := ""
	if cfg.D {
		before = cfg.docText(doc)
	}
	affected, err := docptr.SetAll(doc, ptr, value, docptr.WithRoot(cfg.Root))
	if err != nil {
		return fmt.Errorf("error setting %s in %s: %w", ptr, file, err)
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

// parseValue reads a value argument as JSON, falling back to a plain
// string when the argument is not valid JSON.
func parseValue(arg string) (*ir.Node, error) {
	v, err := ir.Decode([]byte(arg))
	if err == nil {
		return v, nil
	}
	return ir.FromString(arg), nil
}

func printDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
}
