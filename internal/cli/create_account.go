package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vocabachkhoa/api/internal/auth"
	"github.com/vocabachkhoa/api/internal/config"
	"github.com/vocabachkhoa/api/internal/database"
	"github.com/vocabachkhoa/api/internal/database/accounts"
)

// CreateAccountCommand registers an account directly against the database,
// applying the same validation as POST /auth/register.
type CreateAccountCommand struct {
	Username     string
	Password     string
	DatabasePath string
	Driver       string
	DatabaseURL  string
	BcryptCost   int

	out io.Writer
}

func NewCreateAccountCommand() *CreateAccountCommand {
	return &CreateAccountCommand{out: os.Stdout}
}

func (cmd *CreateAccountCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username of the new account (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password of the new account, at least 6 characters (required)")
	fs.StringVar(&cmd.Driver, "driver", config.DriverSQLite, "Database driver: sqlite or postgres")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the sqlite database file")
	fs.StringVar(&cmd.DatabaseURL, "database-url", "", "Postgres connection string (postgres driver only)")
	fs.IntVar(&cmd.BcryptCost, "bcrypt-cost", 10, "bcrypt work factor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-account -username <name> -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an account without going through the HTTP API.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s create-account -username alice -password secret1 -db ./vocab.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" {
		return fmt.Errorf("required flag -username not provided")
	}
	if cmd.Password == "" {
		return fmt.Errorf("required flag -password not provided")
	}

	return nil
}

func (cmd *CreateAccountCommand) Run() error {
	db, err := database.NewDatabase(config.Database{
		Driver:   cmd.Driver,
		Path:     cmd.DatabasePath,
		URL:      cmd.DatabaseURL,
		LogLevel: "silent",
	})
	if err != nil {
		return err
	}
	defer db.Close()

	// Token settings are irrelevant here; only Register is used.
	svc := auth.NewService(accounts.NewRepository(db.DB), config.Auth{BcryptCost: cmd.BcryptCost})

	info, err := svc.Register(context.Background(), cmd.Username, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Created account %q with id %d\n", info.Username, info.UserID)
	return nil
}
