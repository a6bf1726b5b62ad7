// Command electionmaps builds and serves the election map site.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mlnow/electionmaps"
	"github.com/mlnow/electionmaps/internal/getstats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()
	if err := newRoot().Execute(); err != nil {
		logger.Fatal(err)
	}
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func newRoot() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "electionmaps",
		Short:         "Build and serve San Francisco precinct election maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	root.AddCommand(newServe(), newBuild(), newStats())
	return root
}

// loadConfig reads path, or returns the built-in configuration when path
// is empty.
func loadConfig(path string) (*electionmaps.Config, error) {
	if path == "" {
		return electionmaps.DefaultConfig(), nil
	}
	return electionmaps.LoadConfig(path)
}

func newServe() *cobra.Command {
	var addr, dir, cert, key string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a built site directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := electionmaps.NewServer(dir)
			srv.Log = logger
			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 5 * time.Second,
				IdleTimeout:       120 * time.Second,
				TLSConfig: &tls.Config{
					PreferServerCipherSuites: true,
					CurvePreferences: []tls.CurveID{
						tls.CurveP256,
						tls.X25519,
					},
				},
			}
			if cert != "" {
				logger.Info("Serving " + dir + " on https://" + addr)
				return httpSrv.ListenAndServeTLS(cert, key)
			}
			logger.Info("Serving " + dir + " on http://" + addr)
			return httpSrv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", env("ELECTIONMAPS_ADDR", "localhost:10000"), "listen address")
	cmd.Flags().StringVar(&dir, "dir", env("ELECTIONMAPS_DIR", "docs"), "site directory")
	cmd.Flags().StringVar(&cert, "cert", "", "TLS certificate file")
	cmd.Flags().StringVar(&key, "key", "", "TLS key file")
	return cmd
}

func newBuild() *cobra.Command {
	var b electionmaps.Builder
	var config string
	var noCompress bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Process raw precinct data into a site directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config)
			if err != nil {
				return err
			}
			b.Config = cfg
			b.Compress = !noCompress
			b.Log = logger
			return b.Build(context.Background())
		},
	}
	cmd.Flags().StringVar(&config, "config", env("ELECTIONMAPS_CONFIG", ""), "maps.yaml file; empty uses the built-in pages")
	cmd.Flags().StringVar(&b.Src, "src", "data", "directory of raw GeoJSON files")
	cmd.Flags().StringVar(&b.Out, "out", env("ELECTIONMAPS_DIR", "docs"), "output directory")
	cmd.Flags().Float64Var(&b.Tolerance, "tolerance", 0.00001, "simplification tolerance in degrees")
	cmd.Flags().BoolVar(&noCompress, "no-compress", false, "skip writing .br and .gz files")
	return cmd
}

func newStats() *cobra.Command {
	var config, src, out string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Write a summary CSV of every mode's dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config)
			if err != nil {
				return err
			}
			var summaries []getstats.Summary
			for _, name := range cfg.ModeNames() {
				m, _ := cfg.Mode(name)
				idx, err := readIndex(filepath.Join(src, m.Data), m.Schema())
				if err != nil {
					return err
				}
				summaries = append(summaries, getstats.Summarize(m, idx))
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return getstats.WriteCSV(w, summaries)
		},
	}
	cmd.Flags().StringVar(&config, "config", env("ELECTIONMAPS_CONFIG", ""), "maps.yaml file; empty uses the built-in pages")
	cmd.Flags().StringVar(&src, "src", "data", "directory of GeoJSON files")
	cmd.Flags().StringVar(&out, "out", "electionmaps_stats.csv", "output file, or - for stdout")
	return cmd
}

func readIndex(path string, s electionmaps.Schema) (*electionmaps.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fc, err := electionmaps.DecodeCollection(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	idx, err := electionmaps.BuildIndex(fc, s)
	if errors.Is(err, electionmaps.ErrNoFeatures) {
		logger.WithField("file", path).Warn("dataset has no features")
		err = nil
	}
	return idx, err
}
