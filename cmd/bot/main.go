package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"atcoder-notifier/internal/di"
	"atcoder-notifier/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "atcoder-notifier",
		Short:         "Posts yesterday's AtCoder accepts of registered users to Discord",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(serveCmd(), checkCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and run the daily check at 00:00 JST",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the check once against the saved settings and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, cleanup, err := di.InitializeApp(ctx)
			if err != nil {
				log.Printf("failed to initialize application: %v", err)
				return err
			}
			defer cleanup()

			report, err := application.CheckOnce(ctx)
			if usecase.IsAborted(err) {
				log.Printf("check aborted: %v", err)
				return err
			}
			if err != nil {
				log.Printf("check failed: %v", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d users: %d summaries, %d failures\n",
				report.UsersChecked, len(report.Summaries), len(report.FailedUsers))
			return nil
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := di.InitializeApp(ctx)
	if err != nil {
		log.Printf("failed to initialize application: %v", err)
		return err
	}
	defer cleanup()

	if err := application.Run(ctx); err != nil {
		log.Printf("application runtime error: %v", err)
		return err
	}
	return nil
}
