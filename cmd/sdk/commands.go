package sdk

import (
	"fmt"

	"github.com/arthur-debert/sdkman/internal/version"
	"github.com/arthur-debert/sdkman/pkg/candidates"
	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/logging"
	"github.com/arthur-debert/sdkman/pkg/resolver"
	"github.com/arthur-debert/sdkman/pkg/state"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInstallCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "install <candidate> [version] [folder]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			candidate, ver, folder := args[0], argAt(args, 1), argAt(args, 2)
			logger := logging.GetLogger("cli.install").With().
				Str("candidate", candidate).Str("version", ver).Str("folder", folder).Logger()
			defer logging.LogOperationStart(logger, "install")()

			known, err := a.candidates()
			if err != nil {
				return err
			}

			res, err := a.resolver(known).Resolve(cmd.Context(), resolver.NewContext(a.cfg, candidate, ver, folder))
			if err != nil {
				return err
			}
			if res.Defaulted {
				a.out.Info(MsgDefaulted, res.Candidate, a.out.S("version", res.Version))
			}

			if folder != "" {
				dir, err := a.store.LinkLocalVersion(res.Candidate, res.Version, folder)
				if err != nil {
					return err
				}
				a.out.Success(MsgLinkedLocal, a.out.S("candidate", res.Candidate), a.out.S("version", res.Version), a.out.S("path", dir))
				return a.defaultIfUnset(res.Candidate, res.Version)
			}

			if _, err := a.store.ValidateInstalledVersion(res.Candidate, res.Version); err == nil {
				a.out.Info(MsgAlreadyInstalled, res.Candidate, res.Version)
				return nil
			}

			a.out.Success(MsgResolved, a.out.S("candidate", res.Candidate), a.out.S("version", res.Version), res.Source)
			a.out.Muted(MsgArchiveNotice)
			return nil
		},
	}
}

// defaultIfUnset makes version current when the candidate has no usable current link
func (a *app) defaultIfUnset(candidate, version string) error {
	if _, ok := a.store.CurrentVersion(candidate); ok {
		return nil
	}
	if err := a.store.SetCurrent(candidate, version); err != nil {
		return err
	}
	a.out.Success(MsgSetDefault, candidate, a.out.S("version", version))
	return nil
}

func newUninstallCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "uninstall <candidate> <version>",
		Aliases: []string{"rm"},
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		Example: MsgUninstallExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			candidate, ver := args[0], args[1]
			logger := logging.GetLogger("cli.uninstall").With().
				Str("candidate", candidate).Str("version", ver).Bool("force", force).Logger()
			defer logging.LogOperationStart(logger, "uninstall")()

			known, err := a.candidates()
			if err != nil {
				return err
			}
			if err := candidates.Validate(known, candidate); err != nil {
				return err
			}

			a.warnBrokenLink(candidate)
			if err := a.store.RemoveVersion(candidate, ver, force); err != nil {
				return err
			}
			a.out.Success(MsgRemoved, a.out.S("candidate", candidate), a.out.S("version", ver))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newDefaultCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "default <candidate> [version]",
		Aliases: []string{"d"},
		Short:   MsgDefaultShort,
		Long:    MsgDefaultLong,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			candidate, ver := args[0], argAt(args, 1)

			known, err := a.candidates()
			if err != nil {
				return err
			}
			if err := candidates.Validate(known, candidate); err != nil {
				return err
			}

			res, err := a.resolver(known).Resolve(cmd.Context(), resolver.NewContext(a.cfg, candidate, ver, ""))
			if err != nil {
				return err
			}
			if _, err := a.store.ValidateInstalledVersion(res.Candidate, res.Version); err != nil {
				return err
			}

			a.warnBrokenLink(candidate)
			if err := a.store.SetCurrent(res.Candidate, res.Version); err != nil {
				return err
			}
			a.out.Success(MsgSetDefault, res.Candidate, a.out.S("version", res.Version))
			return nil
		},
	}
}

func newCurrentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "current [candidate]",
		Aliases: []string{"c"},
		Short:   MsgCurrentShort,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				candidate := args[0]
				known, err := a.candidates()
				if err != nil {
					return err
				}
				if err := candidates.Validate(known, candidate); err != nil {
					return err
				}
				a.warnBrokenLink(candidate)
				if v, ok := a.store.CurrentVersion(candidate); ok {
					a.out.Println(fmt.Sprintf(MsgUsing, candidate, a.out.S("current", v)))
				} else {
					a.out.Println(fmt.Sprintf(MsgNotUsing, candidate))
				}
				return nil
			}

			installed, err := a.store.InstalledCandidates()
			if err != nil {
				return err
			}
			rows := [][]string{{"Candidate", "Version"}}
			for _, candidate := range installed {
				a.warnBrokenLink(candidate)
				if v, ok := a.store.CurrentVersion(candidate); ok {
					rows = append(rows, []string{a.out.S("candidate", candidate), a.out.S("current", v)})
				}
			}
			if len(rows) == 1 {
				a.out.Println(MsgNoCandidatesInUse)
				return nil
			}
			return a.table(rows)
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list [candidate]",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			known, err := a.candidates()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				installed, err := a.store.InstalledCandidates()
				if err != nil {
					return err
				}
				present := candidates.NewSet(installed...)
				a.out.Println(a.out.S("title", MsgAvailable))
				for _, name := range known.Names() {
					marker := " "
					if present.Contains(name) {
						marker = "*"
					}
					a.out.Printf("  %s %s\n", marker, a.out.S("candidate", name))
				}
				return nil
			}

			candidate := args[0]
			if err := candidates.Validate(known, candidate); err != nil {
				return err
			}
			a.warnBrokenLink(candidate)
			versions, err := a.store.ListInstalled(candidate)
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				a.out.Println(fmt.Sprintf(MsgNoVersions, candidate))
				return nil
			}

			rows := [][]string{{"", "Version", "Path"}}
			for _, v := range versions {
				marker := "*"
				name := a.out.S("version", v.Version)
				switch {
				case v.Current:
					marker = ">"
					name = a.out.S("current", v.Version)
				case v.Local:
					marker = "~"
				}
				rows = append(rows, []string{marker, name, a.out.S("path", v.Path)})
			}
			if err := a.table(rows); err != nil {
				return err
			}
			a.out.Muted(MsgInstalledLegend)
			return nil
		},
	}
}

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   MsgDoctorShort,
		Long:    MsgDoctorLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			problems := 0

			if known, err := a.candidates(); err != nil {
				a.out.Error(MsgErrorPrefix, err)
				problems++
			} else {
				a.out.Success(MsgDoctorManifest, len(known))
			}

			if err := a.cfg.Validate(); err != nil {
				a.out.Warning(MsgDoctorConfig, err.Error())
				problems++
			} else {
				a.out.Success(MsgDoctorConfig, "ok")
			}

			detector := state.NewLinkDetector(a.fs, a.paths)
			broken, err := detector.DetectBrokenLinks()
			if err != nil {
				return err
			}
			for _, link := range broken {
				// a real directory named current is left for the user
				if fix && link.Problem != state.ProblemNotSymlink {
					if err := detector.RemoveBrokenLink(link); err != nil {
						return err
					}
					a.out.Success(MsgDoctorFixed, link.Candidate)
					continue
				}
				a.out.Warning(MsgBrokenLink, a.out.S("candidate", link.Candidate), a.out.S("path", link.Path), link.Problem)
				problems++
			}

			if problems == 0 {
				a.out.Success(MsgDoctorHealthy)
			} else if len(broken) > 0 && !fix {
				a.out.Muted(MsgDoctorFixHint)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, MsgFlagFix)
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			out, err := a.cfg.TOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
			}
			a.out.Printf("%s", out)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
				return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
}

// table renders rows with the first row as header
func (a *app) table(rows [][]string) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	a.out.Println(out)
	return nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
