package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/omniform/docptr/ir"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='print match pointers in color'"`

	Root string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) rootOpt(_ *cli.Context, a string) (any, error) {
	if a != "" && a[0] != '/' {
		return nil, fmt.Errorf("%w: root pointer %q must be absolute", cli.ErrUsage, a)
	}
	cfg.Root = a
	return nil, nil
}

// readDoc loads a document from a file path or stdin ("-"), converting
// YAML input to the JSON tree when selected.
func (cfg *MainConfig) readDoc(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.Y {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
	}
	doc, err := ir.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, doc *ir.Node) error {
	if cfg.Y {
		d, err := yaml.JSONToYAML([]byte(ir.MustString(doc)))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := ir.Encode(doc, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// docText is the document's text in the selected output format, used by
// the -d diff display.
func (cfg *MainConfig) docText(doc *ir.Node) string {
	if cfg.Y {
		d, err := yaml.JSONToYAML([]byte(ir.MustString(doc)))
		if err == nil {
			return string(d)
		}
	}
	return ir.MustString(doc)
}

func (cfg *MainConfig) useColor() bool {
	if cfg.Color {
		return true
	}
	return cfg.Out == "" && isatty.IsTerminal(os.Stdout.Fd())
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Keys *cli.Command
}

type SetConfig struct {
	*MainConfig
	D   bool `cli:"name=d aliases=diff desc='show a before/after diff'"`
	Set *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	D      bool `cli:"name=d aliases=diff desc='show a before/after diff'"`
	Remove *cli.Command
}

type CopyConfig struct {
	*MainConfig
	Copy *cli.Command
}

type PatchConfig struct {
	*MainConfig
	D     bool `cli:"name=d aliases=diff desc='show a before/after diff'"`
	Patch *cli.Command
}
