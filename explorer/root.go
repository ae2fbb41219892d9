package main

import (
	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/pager"
	"bikeshare/prompt"
	"bikeshare/stats"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"io"
	"os"
)

// Execute runs the explorer and returns the exit code
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	var (
		configFilepath string
		dataDir        string
		logLevel       string
	)

	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare data",
		Long:          "Interactive tool that loads the trips of a city, filters them by month and day of week and displays statistics about them.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			explorerConfig, err := config.LoadConfig(configFilepath)
			if err != nil {
				return err
			}

			// flag > env > config file > default
			if cmd.Flags().Changed("data-dir") {
				explorerConfig.DataDir = dataDir
			}
			if cmd.Flags().Changed("log-level") {
				explorerConfig.LogLevel = logLevel
			}

			if err := explorerConfig.Validate(); err != nil {
				return err
			}

			if err := InitLogger(explorerConfig.LogLevel); err != nil {
				return err
			}

			return run(cmd, explorerConfig)
		},
	}

	rootCmd.Flags().StringVarP(&configFilepath, "config", "c", "", "Path to the explorer config file (default "+config.DefaultConfigFilepath+")")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory that contains the trips CSV files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return rootCmd
}

func run(cmd *cobra.Command, explorerConfig *config.ExplorerConfig) error {
	output := cmd.OutOrStdout()

	publisher, closePublisher, err := newReportPublisher(explorerConfig.ReportPublisher)
	if err != nil {
		return err
	}
	defer closePublisher()

	prompter := prompt.NewPrompter(cmd.InOrStdin(), output)
	tripsLoader := loader.NewLoader(explorerConfig.DataDir, explorerConfig.GetCityFiles(), explorerConfig.TimeLayout, output)
	printer := stats.NewPrinter(output, explorerConfig.ShouldHighlight(isTerminal(output)))
	tripsPager := pager.NewPager(prompter, output, explorerConfig.ChunkSize)

	session := NewSession(prompter, tripsLoader, printer, tripsPager, publisher)
	return session.Run(cmd.Context())
}

// newReportPublisher connects to RabbitMQ if the report publisher is enabled. The returned publisher is nil otherwise.
func newReportPublisher(publisherConfig communication.ReportPublisherConfig) (reportPublisher, func(), error) {
	if !publisherConfig.Enabled {
		return nil, func() {}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.URL)
	if err != nil {
		return nil, nil, err
	}

	closeRabbit := func() {
		if err := rabbitMQ.KillBadBunny(); err != nil {
			log.Errorf("[component: report-publisher][status: ERROR] %s", err.Error())
		}
	}

	err = rabbitMQ.DeclareExchanges([]communication.ExchangeDeclarationConfig{publisherConfig.ExchangeConfig})
	if err != nil {
		closeRabbit()
		return nil, nil, err
	}

	log.Infof("[component: report-publisher][status: OK] publishing session reports in %s", publisherConfig.PublishingConfig.Exchange)
	return communication.NewReportPublisher(rabbitMQ, publisherConfig), closeRabbit, nil
}

func isTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
