package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/qpx"
)

// envPrefix maps --api-key to QPX_API_KEY and so on.
const envPrefix = "QPX"

type globalOptions struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "qpx",
		Short:         "Search flights through the QPX Express API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(opts.v, cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("api-key", "", "QPX Express API key (env QPX_API_KEY)")
	flags.String("backup", "", "Directory to archive request/response pairs in (env QPX_BACKUP)")
	flags.String("base-url", qpx.DefaultBaseURL, "API root URL")
	flags.Duration("timeout", 30*time.Second, "HTTP timeout per search")
	flags.String("location", "", "IANA time zone for date normalisation, default local")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("pretty", false, "Indent the JSON response")

	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newRawCmd(opts))

	return cmd
}

// bindFlags lets every flag fall back to its QPX_* environment variable.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

func (o *globalOptions) newClient(cmd *cobra.Command) (*qpx.Client, error) {
	level, err := logger.ParseLevel(o.v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	appLogger := logger.New(logger.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		Format: "text",
	})

	clientOpts := []qpx.Option{
		qpx.WithBaseURL(o.v.GetString("base-url")),
		qpx.WithTimeout(o.v.GetDuration("timeout")),
		qpx.WithBackup(o.v.GetString("backup")),
		qpx.WithLogger(appLogger),
	}

	if name := o.v.GetString("location"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid location %q: %w", name, err)
		}
		clientOpts = append(clientOpts, qpx.WithLocation(loc))
	}

	return qpx.NewClient(o.v.GetString("api-key"), clientOpts...)
}

func (o *globalOptions) printResponse(w io.Writer, resp json.RawMessage) error {
	if o.v.GetBool("pretty") {
		var buf bytes.Buffer
		if err := json.Indent(&buf, resp, "", "  "); err == nil {
			resp = buf.Bytes()
		}
	}

	if _, err := w.Write(resp); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
