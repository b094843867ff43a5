package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/omniform/docptr"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a pointer argument", cli.ErrUsage)
	}
	ptr := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		matches, err := docptr.GetAll(doc, ptr, docptr.WithRoot(cfg.Root))
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, ptr, err)
		}
		for _, m := range matches {
			fmt.Fprintf(cc.Out, "%s\t", cfg.pointerText(m.Pointer))
			if err := cfg.writeDoc(cc.Out, m.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires a pointer argument", cli.ErrUsage)
	}
	ptr := args[0] + "#"
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		matches, err := docptr.GetAll(doc, ptr, docptr.WithRoot(cfg.Root))
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, ptr, err)
		}
		for _, m := range matches {
			fmt.Fprintf(cc.Out, "%s\t", cfg.pointerText(m.Pointer))
			if err := cfg.writeDoc(cc.Out, m.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *MainConfig) pointerText(ptr string) string {
	if cfg.useColor() {
		return color.CyanString("%s", ptr)
	}
	return ptr
}
