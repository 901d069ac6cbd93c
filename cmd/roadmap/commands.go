package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/propgo/roadmap-engine/internal/config"
	"github.com/propgo/roadmap-engine/internal/output"
	"github.com/propgo/roadmap-engine/internal/server"
	"github.com/propgo/roadmap-engine/internal/worker"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newProjectCmd() *cobra.Command {
	var format string
	var toFile bool
	cmd := &cobra.Command{
		Use:   "project <scenario.yaml>",
		Short: "Project a roadmap from a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			req, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			projector := newProjector()
			projection, err := projector.Project(req)
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}
			report := output.NewReport(req, projection, projector.Rules)

			if toFile {
				files, err := output.GenerateReport(report, format)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
				}
				return nil
			}
			data, err := output.Render(report, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().BoolVar(&toFile, "write", false, "write the report to a timestamped file instead of stdout")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var format, outDir string
	var parallel int
	cmd := &cobra.Command{
		Use:   "batch <scenario.yaml>...",
		Short: "Project several scenario files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			parser := config.NewInputParser()
			g, _ := errgroup.WithContext(cmd.Context())
			g.SetLimit(parallel)
			for _, path := range args {
				g.Go(func() error {
					req, err := parser.LoadFromFile(path)
					if err != nil {
						return err
					}
					projector := newProjector()
					projection, err := projector.Project(req)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					data, err := f.Format(output.NewReport(req, projection, projector.Rules))
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
					target := filepath.Join(outDir, base+"."+output.ExtensionFor(format))
					if err := os.WriteFile(target, data, 0644); err != nil {
						return err
					}
					logger.Infof("%s -> %s (%d purchases)", path, target, projection.Summary.PurchasesMade)
					return nil
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format")
	cmd.Flags().StringVarP(&outDir, "out", "o", "reports", "output directory")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "maximum concurrent projections")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP projection server",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := worker.New(newProjector())
			w.Start()
			defer w.Stop()

			srv := server.New(w, logger)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe(settings.Server.Addr()) }()
			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				logger.Infof("shutting down")
				return srv.Shutdown()
			}
		},
	}
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <scenario.yaml>",
		Short: "Write an example scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := config.NewInputParser().CreateExampleRequest()
			if err := config.SaveRequest(req, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
