package sdk

import (
	"io"
	"os"

	"github.com/arthur-debert/sdkman/pkg/candidates"
	"github.com/arthur-debert/sdkman/pkg/catalog"
	"github.com/arthur-debert/sdkman/pkg/config"
	"github.com/arthur-debert/sdkman/pkg/datastore"
	"github.com/arthur-debert/sdkman/pkg/filesystem"
	"github.com/arthur-debert/sdkman/pkg/paths"
	"github.com/arthur-debert/sdkman/pkg/resolver"
	"github.com/arthur-debert/sdkman/pkg/state"
	"github.com/arthur-debert/sdkman/pkg/style"
	"github.com/arthur-debert/sdkman/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// app wires the components for one invocation
type app struct {
	cfg    config.Config
	fs     types.FS
	paths  paths.Paths
	store  datastore.DataStore
	out    *style.Printer
	errOut *style.Printer
}

func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	overrides := map[string]interface{}{}
	if opts.offline {
		overrides[config.KeyOffline] = true
	}

	cfg, err := config.Load(config.Options{Overrides: overrides})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.Root, cfg.CandidatesDir)
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	a := &app{
		cfg:    cfg,
		fs:     fs,
		paths:  p,
		store:  datastore.New(fs, p),
		out:    printerFor(cmd.OutOrStdout()),
		errOut: printerFor(cmd.ErrOrStderr()),
	}

	// pterm tables go to stdout
	if a.out.Format() == style.FormatText {
		pterm.DisableStyling()
	} else {
		pterm.EnableStyling()
	}
	return a, nil
}

// printerFor styles output only for color-capable terminals
func printerFor(w io.Writer) *style.Printer {
	format := style.FormatText
	if f, ok := w.(*os.File); ok {
		format = style.DetectFormat(f)
	}
	return style.NewPrinter(w, format)
}

func (a *app) candidates() (candidates.Set, error) {
	return candidates.LoadKnown(a.fs, a.paths)
}

func (a *app) resolver(known candidates.Set) *resolver.Resolver {
	var client resolver.Catalog
	if a.cfg.Online() {
		client = catalog.New(a.cfg.CandidatesAPI, a.cfg.InsecureSSL)
	}
	return resolver.New(client, a.store, a.fs, a.paths, known)
}

// warnBrokenLink prints a warning when the candidate's current link is broken
func (a *app) warnBrokenLink(candidate string) {
	link := a.store.InspectCurrent(candidate)
	if link.State == state.LinkBroken {
		a.errOut.Warning(MsgBrokenLinkSkipped, candidate, link.Problem)
	}
}

// StderrPrinter returns a printer for error output
func StderrPrinter() *style.Printer {
	return printerFor(os.Stderr)
}
