package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

var (
	errMissingOwner  = errors.New("owner argument is required")
	errInvalidNumber = errors.New("vault number must be a positive integer")
	errNoSignKey     = errors.New("no token given and APP_TOKEN_SIGN_KEY is not set")
)

type App struct {
	adapter adapter.AdminAdapter
	cfg     *config.ClientConfig
	build   models.AppBuildInfo

	out    io.Writer
	logger *logger.Logger
}

func NewApp(adminAdapter adapter.AdminAdapter, cfg *config.ClientConfig, build models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: adminAdapter,
		cfg:     cfg,
		build:   build,
		out:     out,
		logger:  logger,
	}
}

// Run implements [Client]. args includes the program name, as in os.Args.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cliApp().RunContext(ctx, args)
}

func (a *App) cliApp() *cli.App {
	app := &cli.App{
		Name:    "vaultctl",
		Usage:   "Administer the vaults stored by vaultd",
		Version: a.build.Version,
		Writer:  a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				EnvVars: []string{"VAULTCTL_TOKEN"},
				Usage:   "bearer token; minted from APP_TOKEN_SIGN_KEY when empty",
			},
		},
		Before: a.authorize,
		Commands: []*cli.Command{
			a.tokenCmd(),
			a.versionCmd(),
			a.listCmd(),
			a.showCmd(),
			a.deleteCmd(),
			a.deleteAllCmd(),
			a.failuresCmd(),
		},
	}
	// errors are returned to main instead of exiting the process
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// authorize stores the bearer token for the admin calls. An explicit token
// wins; otherwise an admin token is minted when a sign key is configured.
func (a *App) authorize(c *cli.Context) error {
	if token := c.String("token"); token != "" {
		a.adapter.SetToken(token)
		return nil
	}
	if a.cfg.App.TokenSignKey == "" {
		// commands that need a token fail with 401 from the server
		return nil
	}

	token, err := a.mintToken("vaultctl", []string{models.PermissionAdmin})
	if err != nil {
		return err
	}
	a.adapter.SetToken(token.String())
	return nil
}

func (a *App) mintToken(subject string, scopes []string) (models.Token, error) {
	if a.cfg.App.TokenSignKey == "" {
		return models.Token{}, errNoSignKey
	}
	return utils.GenerateJWTToken(a.cfg.App.TokenIssuer, subject, scopes, a.cfg.App.TokenDuration, a.cfg.App.TokenSignKey)
}

func (a *App) tokenCmd() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint a signed admin API token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Value: "vaultctl", Usage: "token subject"},
			&cli.StringSliceFlag{
				Name:  "scope",
				Value: cli.NewStringSlice(models.PermissionAdmin),
				Usage: "permission node granted by the token, repeatable",
			},
		},
		Action: func(c *cli.Context) error {
			token, err := a.mintToken(c.String("subject"), c.StringSlice("scope"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			_, err = fmt.Fprintln(a.out, token.String())
			return err
		},
	}
}

func (a *App) versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "server-version",
		Usage: "Print the version reported by vaultd",
		Action: func(c *cli.Context) error {
			v, err := a.adapter.Version(c.Context)
			if err != nil {
				return a.outputError(err)
			}
			return a.outputJSON(map[string]string{"client": a.build.Version, "server": v})
		},
	}
}

func (a *App) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the vault numbers of an owner",
		ArgsUsage: "<owner>",
		Action: func(c *cli.Context) error {
			owner, err := ownerArg(c)
			if err != nil {
				return a.outputError(err)
			}
			numbers, err := a.adapter.ListVaults(c.Context, owner)
			if err != nil {
				return a.outputError(err)
			}
			if numbers == nil {
				numbers = []int{}
			}
			return a.outputJSON(models.VaultListResponse{Owner: models.OwnerID(owner), Numbers: numbers})
		},
	}
}

func (a *App) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the contents of a vault",
		ArgsUsage: "<owner> <number>",
		Action: func(c *cli.Context) error {
			owner, number, err := vaultArgs(c)
			if err != nil {
				return a.outputError(err)
			}
			vault, err := a.adapter.ShowVault(c.Context, owner, number)
			if err != nil {
				return a.outputError(err)
			}
			return a.outputJSON(vault)
		},
	}
}

func (a *App) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete one vault",
		ArgsUsage: "<owner> <number>",
		Action: func(c *cli.Context) error {
			owner, number, err := vaultArgs(c)
			if err != nil {
				return a.outputError(err)
			}
			if err = a.adapter.DeleteVault(c.Context, owner, number); err != nil {
				return a.outputError(err)
			}
			a.logger.Info().Str("owner", owner).Int("number", number).Msg("vault deleted")
			return nil
		},
	}
}

func (a *App) deleteAllCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete-all",
		Usage:     "Delete every vault of an owner",
		ArgsUsage: "<owner>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "confirm the deletion"},
		},
		Action: func(c *cli.Context) error {
			owner, err := ownerArg(c)
			if err != nil {
				return a.outputError(err)
			}
			if !c.Bool("yes") {
				return cli.Exit("refusing to delete every vault of "+owner+" without --yes", 1)
			}
			if err = a.adapter.DeleteAllVaults(c.Context, owner); err != nil {
				return a.outputError(err)
			}
			a.logger.Info().Str("owner", owner).Msg("all vaults deleted")
			return nil
		},
	}
}

func (a *App) failuresCmd() *cli.Command {
	return &cli.Command{
		Name:  "failures",
		Usage: "Print recent persistence failures",
		Action: func(c *cli.Context) error {
			failures, err := a.adapter.Failures(c.Context)
			if err != nil {
				return a.outputError(err)
			}
			if failures == nil {
				failures = []models.SaveFailure{}
			}
			return a.outputJSON(models.FailuresResponse{Failures: failures, Length: len(failures)})
		},
	}
}

func ownerArg(c *cli.Context) (string, error) {
	owner := strings.TrimSpace(c.Args().First())
	if owner == "" {
		return "", errMissingOwner
	}
	return owner, nil
}

func vaultArgs(c *cli.Context) (string, int, error) {
	owner, err := ownerArg(c)
	if err != nil {
		return "", 0, err
	}
	number, err := strconv.Atoi(c.Args().Get(1))
	if err != nil || number < 1 {
		return "", 0, errInvalidNumber
	}
	return owner, number, nil
}

func (a *App) outputJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) outputError(err error) error {
	return cli.Exit(err.Error(), 1)
}
