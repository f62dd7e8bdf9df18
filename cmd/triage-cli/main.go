package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mikey/email-triage/internal/di"
	"github.com/mikey/email-triage/internal/factory"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/textproc"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run classifies a single text and prints the result
func run(
	flags *di.CLIFlags,
	logger *zap.Logger,
	frontend ports.Frontend,
	selection factory.ProviderSelection,
	normalizer *textproc.Normalizer,
) error {
	defer logger.Sync()
	defer normalizer.Close()

	text, err := readInput(flags, logger)
	if err != nil {
		logger.Fatal("Failed to read input", zap.Error(err))
		return err
	}

	if _, err := frontend.ProcessText(context.Background(), text); err != nil {
		logger.Fatal("Failed to classify text", zap.Error(err))
		return err
	}

	// Close any resources that need closing
	if closer, ok := selection.Provider.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close sentiment provider", zap.Error(err))
		}
	}

	return nil
}

// readInput resolves the email text from the -text flag, an input file, or
// stdin, in that order.
func readInput(flags *di.CLIFlags, logger *zap.Logger) (string, error) {
	if flags.Text != "" {
		return flags.Text, nil
	}

	if flags.InputFile != "" {
		logger.Info("Reading text from file", zap.String("file", flags.InputFile))
		content, err := os.ReadFile(flags.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(content), nil
	}

	logger.Info("Reading text from stdin")
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}
