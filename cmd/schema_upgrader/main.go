package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"time"

	dbInterface "github.com/opst/aptsales/pkg/domain/aptsales/db"
	"github.com/opst/aptsales/pkg/domain/aptsales/db/postgres"
	"github.com/opst/aptsales/pkg/utils/retry"
	"github.com/opst/aptsales/pkg/utils/try"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Host     string `flag:"host" help:"The host of the database."`
	Port     int    `flag:"port" help:"The port of the database."`
	User     string `flag:"user" help:"The user of the database."`
	Password string `flag:"pass" help:"The password of the database."`
	Database string `flag:"database" help:"The name of the database."`

	Schema string `flag:"schema" help:"The path to the schema repository directory."`
}

const ARG_SCHEMA_DEST = "ARG_SCHEMA_DEST"

// the database may be starting up along with this command.
const connectTimeout = 2 * time.Minute

func main() {
	logger := log.Default()
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, os.Kill,
	)
	defer cancel()

	port := 5432
	if sp := os.Getenv("DB_PORT"); sp != "" {
		p, err := strconv.Atoi(sp)
		if err == nil {
			port = p
		}
	}

	cmd := try.To(flarc.NewCommand(
		"database schema upgrader",
		Flag{
			Host:     os.Getenv("DB_HOST"),
			Port:     port,
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_NAME"),

			Schema: os.Getenv("APTSALES_SCHEMA"),
		},
		flarc.Args{
			{
				Name: ARG_SCHEMA_DEST, Help: "The schema files are copied to this directory.",
				Required: false, Repeatable: false,
			},
		},
		func(ctx context.Context, c flarc.Commandline[Flag], a []any) error {
			flags := c.Flags()

			dest := c.Args()[ARG_SCHEMA_DEST]
			if len(dest) != 0 {
				logger.Println("copying schema files...")
				if err := os.CopyFS(dest[0], os.DirFS(flags.Schema)); err != nil {
					return err
				}
			}

			cctx, ccancel := context.WithTimeout(ctx, connectTimeout)
			defer ccancel()
			db, err := retry.Blocking(
				cctx, retry.ExponentialBackoff(time.Second, 2, 10*time.Second),
				func() (dbInterface.AptsalesDatabase, error) {
					db, err := postgres.New(
						cctx, connString(flags), postgres.WithSchemaRepository(flags.Schema),
					)
					if err != nil {
						logger.Printf("database is not ready: %s", err)
						return nil, fmt.Errorf("%w: %w", retry.ErrRetry, err)
					}
					return db, nil
				},
			)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Schema().Upgrade(ctx); err != nil {
				return err
			}
			v, err := db.Schema().Version(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Stdout(), "schema version: %d\n", v)
			return nil
		},
	)).OrFatal(logger)

	os.Exit(flarc.Run(ctx, cmd))
}

func connString(f Flag) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(f.User, f.Password),
		Host:   fmt.Sprintf("%s:%d", f.Host, f.Port),
		Path:   "/" + f.Database,
	}
	return u.String()
}
