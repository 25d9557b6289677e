package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mokfembam/portfolio/internal/catalog"
	"github.com/mokfembam/portfolio/internal/config"
	"github.com/mokfembam/portfolio/internal/observability"
)

type serveFlags struct {
	envFile     string
	port        string
	dev         bool
	templates   string
	catalogFile string
}

func newRootCmd() *cobra.Command {
	flags := &serveFlags{}
	root := &cobra.Command{
		Use:   "web",
		Short: "Serve the portfolio site",
		Long: `web serves the single-page portfolio. Filter, detail and notice state
travel in the URL query, so every view is reachable by a plain GET and
htmx swaps the matching fragment in place.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	bindServeFlags(root, flags)
	root.AddCommand(newServeCmd(), newCatalogCmd())
	return root
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	bindServeFlags(cmd, flags)
	return cmd
}

func bindServeFlags(cmd *cobra.Command, flags *serveFlags) {
	cmd.Flags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file read before the environment")
	cmd.Flags().StringVar(&flags.port, "port", "", "listen port (overrides PORTFOLIO_PORT)")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "reparse templates from disk on every request")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "templates directory for --dev")
	cmd.Flags().StringVar(&flags.catalogFile, "catalog", "", "serve content from this catalog file instead of the embedded one")
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cfg, err := config.Load(config.WithEnvFile(flags.envFile))
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if flags.port != "" {
		cfg.Server.Port = flags.port
	}
	if cmd.Flags().Changed("dev") {
		cfg.Site.DevMode = flags.dev
	}
	if flags.templates != "" {
		cfg.Site.TemplatesDir = flags.templates
	}
	if cfg.Site.DevMode && cfg.Site.TemplatesDir == "" {
		cfg.Site.TemplatesDir = "templates"
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	defer func() { _ = logger.Sync() }()

	cat := catalog.Default()
	if flags.catalogFile != "" {
		if cat, err = catalog.LoadFile(flags.catalogFile); err != nil {
			return errors.Wrapf(err, "failed to load catalog %s", flags.catalogFile)
		}
	}

	srv, err := newServer(cfg, cat, logger)
	if err != nil {
		return errors.Wrap(err, "failed to build server")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Prod() && cfg.Site.DevMode {
		return observability.NewDevelopmentLogger(), nil
	}
	return observability.NewLogger(cfg.Log.Level)
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the content catalog",
	}

	var file string
	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file (defaults to the embedded catalog)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog ok: %d projects, %d services, %d skills\n",
				len(c.Projects()), len(c.Services()), len(c.Skills()))
			return nil
		},
	}
	validate.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file")

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print the embedded catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpCatalog(cmd.OutOrStdout(), catalog.Default())
		},
	}

	cmd.AddCommand(validate, dump)
	return cmd
}

func loadCatalog(file string) (*catalog.Catalog, error) {
	if file == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", file)
	}
	return c, nil
}

func dumpCatalog(w io.Writer, c *catalog.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to encode catalog")
	}
	return enc.Close()
}
