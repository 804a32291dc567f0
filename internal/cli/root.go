// Package cli implements the rivalctl command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	authdto "rivalradar_backend/internal/feature/auth/transport/http/dto"
	comparisondto "rivalradar_backend/internal/feature/comparison/transport/http/dto"
	competitorsdto "rivalradar_backend/internal/feature/competitors/transport/http/dto"
	"rivalradar_backend/internal/platform/apiclient"
	"rivalradar_backend/internal/platform/credential"
	infrahttp "rivalradar_backend/internal/platform/http"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

const (
	keyServer  = "server"
	keyTimeout = "timeout"
)

// API is the subset of the backend the commands call.
type API interface {
	Login(ctx context.Context, email, password string) (*authdto.TokenRes, error)
	ListCompetitors(ctx context.Context) ([]competitorsdto.CompetitorRes, error)
	Dashboard(ctx context.Context) (*comparisondto.ViewModelRes, error)
}

// CredentialStore persists the tokens obtained by login.
type CredentialStore interface {
	apiclient.CredentialProvider
	Save(c *credential.Credentials) error
	Path() string
}

var (
	_ API             = (*apiclient.Client)(nil)
	_ CredentialStore = (*credential.FileStore)(nil)
)

// app carries the state shared by every command.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	store  CredentialStore
	newAPI func(cfg apiclient.Config, creds apiclient.CredentialProvider) API
	now    func() time.Time
}

func defaultAPI(cfg apiclient.Config, creds apiclient.CredentialProvider) API {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = apiclient.DefaultTimeout
	}
	return apiclient.New(cfg, infrahttp.NewHTTPClient(timeout, infrahttp.WithUserAgent("rivalctl/"+Version)), creds)
}

// Execute runs rivalctl with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree backed by the real backend and the
// credential file under $HOME/.rivalradar.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: viper.New(), newAPI: defaultAPI, now: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "rivalctl",
		Short: "rivalctl - command-line client for the RivalRadar backend",
		Long: `rivalctl talks to a running RivalRadar backend.

It logs in, lists your registered companies, prints the server-side
dashboard, and can compute the feature comparison locally from the company list.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (RIVALRADAR_*)
3. Config file (~/.rivalradar/config.yaml)
4. Defaults`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.rivalradar/config.yaml)")
	pf.String(keyServer, apiclient.DefaultBaseURL, "backend base URL")
	pf.Duration(keyTimeout, apiclient.DefaultTimeout, "per-request timeout")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = a.v.BindPFlag(keyServer, pf.Lookup(keyServer))
	_ = a.v.BindPFlag(keyTimeout, pf.Lookup(keyTimeout))

	root.AddCommand(
		newVersionCmd(),
		newLoginCmd(a),
		newCompetitorsCmd(a),
		newCompareCmd(a),
		newDashboardCmd(a),
	)
	return root
}

// initConfig reads the config file and RIVALRADAR_* environment variables,
// then opens the credential store.
func (a *app) initConfig(cmd *cobra.Command) error {
	dir, dirErr := credential.DefaultDir()
	switch {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
	case dirErr == nil:
		a.v.AddConfigPath(dir)
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}

	a.v.SetEnvPrefix("RIVALRADAR")
	a.v.AutomaticEnv()

	// An explicit --config must exist; the default location is optional.
	err := a.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		if a.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", a.v.ConfigFileUsed())
		}
	case a.cfgFile != "" || !errors.As(err, &notFound):
		return fmt.Errorf("read config: %w", err)
	}

	if a.store == nil {
		if dirErr != nil {
			return dirErr
		}
		a.store = credential.NewFileStore(dir)
	}
	return nil
}

func (a *app) api() API {
	cfg := apiclient.Config{
		BaseURL: a.v.GetString(keyServer),
		Timeout: a.v.GetDuration(keyTimeout),
	}
	return a.newAPI(cfg, a.store)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rivalctl %s\n", Version)
		},
	}
}
