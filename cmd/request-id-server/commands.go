package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arun0009/request-id-header/requestid"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:   "request-id-server",
		Short: "HTTP server guaranteeing a unique X-Request-ID on every request",
		Long: `HTTP server guaranteeing a unique X-Request-ID on every request.
- Existing request IDs from clients and proxies are kept as they are
- A UUID is appended when no existing value is unique
- The final value is echoed back on every response`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newReconcileCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("request id server starting",
				zap.String("port", cfg.Port),
				zap.String("header", cfg.requestID().Header()),
				zap.String("unique_value_prefix", cfg.UniqueValuePrefix),
			)
			return newServer(cfg, logger).run(ctx)
		},
	}
}

func newReconcileCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "reconcile [header-value]",
		Short: "Print the request ID header value the server would forward",
		Long: `Print the request ID header value the server would forward.
Without an argument the header is treated as absent. Pass "" for a header
that is present but empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prefix") {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				prefix = cfg.UniqueValuePrefix
			}

			var existing string
			if len(args) == 1 {
				existing = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), requestid.Reconcile(existing, len(args) == 1, prefix))
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "trusted unique value prefix (defaults to REQUEST_ID_UNIQUE_VALUE_PREFIX)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of request-id-server",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
