package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-better-config/internal/render"
)

func (a *App) newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve [FILE...]",
		Short:   "Print the configuration with environment overrides applied",
		Example: "confctl resolve -f base.json,local.json --env-file .env -o yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd, args)
			if err != nil {
				return err
			}

			m, err := s.resolve()
			if err != nil {
				return err
			}
			return render.Encode(cmd.OutOrStdout(), m, s.cfg.OutputFormat())
		},
	}
}

func (a *App) newFlattenCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "flatten [FILE...]",
		Short:   "Print the layered configuration without environment overrides",
		Example: "confctl flatten config.toml -o properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd, args)
			if err != nil {
				return err
			}

			m, err := s.loader.Read(s.target)
			if err != nil {
				return fmt.Errorf("reading %q: %w", s.target, err)
			}
			return render.Encode(cmd.OutOrStdout(), m, s.cfg.OutputFormat())
		},
	}
}

func (a *App) newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "explain [FILE...]",
		Short:   "Show, for every key, which variable was consulted and where the value came from",
		Example: "confctl explain -f config.yaml --prefix APP_ --exclude password",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd, args)
			if err != nil {
				return err
			}

			base, err := s.loader.Read(s.target)
			if err != nil {
				return fmt.Errorf("reading %q: %w", s.target, err)
			}

			decisions := s.loader.Explain(base, s.cfg.Excluded())
			return render.ExplainTable(cmd.OutOrStdout(), decisions)
		},
	}
}

func (a *App) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get KEY [FILE...]",
		Short:   "Print one resolved value",
		Example: "confctl get database.host -f config.json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd, args[1:])
			if err != nil {
				return err
			}

			m, err := s.resolve()
			if err != nil {
				return err
			}

			v, ok := m.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", ErrKeyNotFound, args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printBuildInfo(cmd)
		},
	}
}

func (a *App) printBuildInfo(cmd *cobra.Command) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(),
		"Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.info.BuildVersion(), a.info.BuildDate(), a.info.BuildCommit())
	return err
}
