// Package command provides the idealctl commands. They talk to a running
// IdealCar API through internal/client.
//
//	idealctl cars list [--make toyota] [--max-price 300000]
//	idealctl blog list
//	idealctl contact --name ... --email ... --message ...
//	idealctl login                  # prints a token for IDEALCAR_TOKEN
//	idealctl cars add --make ... --model ... --year ... --price ... [--image a.jpg]
//	idealctl cars update ID --price 240000
//	idealctl cars delete ID
//	idealctl stats
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/client"
)

const defaultAPI = "http://localhost:3000"

var (
	apiURL string
	token  string
)

var rootCmd = &cobra.Command{
	Use:           "idealctl",
	Short:         "Command line client for the IdealCar API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected by the CLI arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fillFromEnv)
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default $IDEALCAR_API or "+defaultAPI+")")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "admin token (default $IDEALCAR_TOKEN)")
}

// fillFromEnv applies environment defaults to flags left empty.
func fillFromEnv() {
	if apiURL == "" {
		apiURL = os.Getenv("IDEALCAR_API")
	}
	if apiURL == "" {
		apiURL = defaultAPI
	}
	if token == "" {
		token = os.Getenv("IDEALCAR_TOKEN")
	}
}

func newClient() *client.Client {
	return client.New(apiURL)
}

// newAdmin returns an admin client carrying the configured token.
func newAdmin() (*client.Admin, error) {
	if token == "" {
		return nil, errors.New("no admin token: run idealctl login and set IDEALCAR_TOKEN or pass --token")
	}
	admin := client.NewAdmin(newClient())
	admin.SetToken(token)
	return admin, nil
}

// printError prints err with per-field details from the server or from
// local validation.
func printError(w io.Writer, err error) {
	var (
		apiErr *client.APIError
		appErr *apperr.Error
	)
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintf(w, "error: %s\n", apiErr.Message)
		printFields(w, apiErr.Fields)
	case errors.As(err, &appErr) && len(appErr.Fields) > 0:
		fmt.Fprintln(w, "error: invalid input")
		printFields(w, appErr.Fields)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

func printFields(w io.Writer, fields map[string][]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range fields[name] {
			fmt.Fprintf(w, "  %s: %s\n", name, msg)
		}
	}
}
