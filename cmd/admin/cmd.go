package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yigit/learnify/internal/app/services"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	migrate     func(ctx context.Context) error
	authService services.AuthService
	out         io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate                                  - apply pending database migrations")
	fmt.Fprintln(cli.out, "  create-admin -email EMAIL [-name NAME]   - create an admin account; the password is prompted")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		if err := cli.migrate(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "migrations applied")
		return nil

	case "create-admin":
		createAdminCmd := flag.NewFlagSet("create-admin", flag.ContinueOnError)
		createAdminCmd.SetOutput(cli.out)
		name := createAdminCmd.String("name", "Administrator", "Display name of the admin")
		email := createAdminCmd.String("email", "", "Email the admin logs in with. The password will be prompted next.")
		if err := createAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if strings.TrimSpace(*email) == "" {
			createAdminCmd.Usage()
			return errHelp
		}

		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			createAdminCmd.Usage()
			return errHelp
		}
		return cli.createAdmin(ctx, *name, *email, string(pwd))

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) createAdmin(ctx context.Context, name, email, pwd string) error {
	user, err := cli.authService.CreateAdmin(ctx, name, email, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "admin %s created with id %d\n", user.Email, user.ID)
	return nil
}
