package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/hyperdoc"
	"github.com/aretw0/hyperdoc/internal/cli"
	"github.com/aretw0/hyperdoc/internal/logging"
	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "hyperdoc",
	Short: "Hyperdoc is a command-line hypermedia API browser",
	Long: `Hyperdoc fetches hypermedia documents and follows the links they
describe, keeping the current document between invocations so an API can be
explored one transition at a time.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ~/.hyperdoc/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// session bundles the collaborators every command needs.
type session struct {
	cfg    *cli.Config
	client *hyperdoc.Client
	store  ports.DocumentStore
	logger *slog.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	configDir := filepath.Dir(configPath)
	if configPath == "" {
		dir, err := cli.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
		configPath = filepath.Join(dir, "config.yaml")
	}

	cfg, err := cli.Load(configPath)
	if err != nil {
		return nil, err
	}

	store, err := cli.NewStore(cfg, configDir)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		client: cli.NewClient(cfg, logger),
		store:  store,
		logger: logger,
	}, nil
}

// current loads the document fetched by the previous command.
func (s *session) current(cmd *cobra.Command) (*domain.Document, error) {
	doc, err := s.store.Load(cmd.Context(), cli.HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("no current document; run 'hyperdoc get URL' first (%w)", err)
	}
	return doc, nil
}

// remember saves a result as the current document and prints it.
func (s *session) remember(cmd *cobra.Command, result domain.Value) error {
	if doc, ok := result.(*domain.Document); ok {
		if err := s.store.Save(cmd.Context(), cli.HistoryKey, doc); err != nil {
			return err
		}
	}
	if result == nil {
		return nil
	}
	fmt.Println(result)
	return nil
}
