// Command esgflow drives the ESG report drafting pipeline from the command
// line: run the workflow over an enterprise profile, inspect archived
// packages, record reviewer confirmations and export sub-artifacts.
package main

import (
	"fmt"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spf13/cobra"

	"github.com/hupe1980/esgflow"
	"github.com/hupe1980/esgflow/archive"
	"github.com/hupe1980/esgflow/config"
	"github.com/hupe1980/esgflow/generator"
	anthropicgen "github.com/hupe1980/esgflow/generator/anthropic"
	openaigen "github.com/hupe1980/esgflow/generator/openai"
	"github.com/hupe1980/esgflow/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "esgflow",
		Short:         "Generate and review ESG disclosure report drafts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	cmd.AddCommand(
		newRunCmd(&cfgPath),
		newListCmd(&cfgPath),
		newShowCmd(&cfgPath),
		newConfirmCmd(&cfgPath),
		newExportCmd(&cfgPath),
	)
	return cmd
}

// openFlow assembles the façade from the loaded configuration: file archive,
// configured generator and structured logger.
func openFlow(cfgPath string) (*esgflow.ESGFlow, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLevel(cfg.Logging.Level),
		Format:    cfg.Logging.Format,
		Output:    os.Stderr,
		Component: "cli",
	})

	store, err := archive.OpenFileStore(cfg.Archive.Dir)
	if err != nil {
		return nil, err
	}

	gen, err := buildGenerator(cfg.Generator)
	if err != nil {
		return nil, err
	}

	return esgflow.New(func(o *esgflow.Options) {
		o.Store = store
		o.Generator = gen
		o.StageTimeout = cfg.Generator.Timeout.Duration()
		o.Logger = logger
	})
}

func buildGenerator(cfg config.GeneratorConfig) (generator.Generator, error) {
	switch cfg.Provider {
	case "openai":
		var client openaisdk.Client
		if cfg.APIKey != "" {
			client = openaisdk.NewClient(option.WithAPIKey(cfg.APIKey))
		} else {
			client = openaisdk.NewClient()
		}
		return openaigen.NewFromClient(&client, func(o *openaigen.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			o.Temperature = cfg.Temperature
			if cfg.MaxTokens > 0 {
				o.MaxCompletionTokens = cfg.MaxTokens
			}
		}), nil
	case "anthropic":
		return anthropicgen.New(func(o *anthropicgen.Options) {
			o.APIKey = cfg.APIKey
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			o.Temperature = cfg.Temperature
			if cfg.MaxTokens > 0 {
				o.MaxTokens = cfg.MaxTokens
			}
		}), nil
	default:
		return generator.NewDeterministic(), nil
	}
}
