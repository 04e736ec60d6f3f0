package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/configs/server"
	"github.com/opst/aptsales/pkg/domain/aptsales"
	"github.com/opst/aptsales/pkg/utils/try"
	"github.com/youta-t/flarc"
)

type Flag struct {
	ConfigPath string `flag:"config-path" help:"path to the config file of aptsalesd."`
	Email      string `flag:"email" help:"email of the superuser."`
	FullName   string `flag:"full-name" help:"full name of the superuser. If empty, the current name is kept."`
	Password   string `flag:"password" help:"password of the superuser."`
}

func main() {
	logger := log.Default()
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, os.Kill,
	)
	defer cancel()

	cmd := try.To(flarc.NewCommand(
		"create or update an active superuser",
		Flag{
			ConfigPath: os.Getenv("APTSALES_CONFIG"),
			Email:      os.Getenv("FIRST_SUPERUSER"),
			Password:   os.Getenv("FIRST_SUPERUSER_PASSWORD"),
		},
		flarc.Args{},
		func(ctx context.Context, c flarc.Commandline[Flag], _ []any) error {
			flags := c.Flags()
			if flags.Email == "" {
				return errors.New("email is required")
			}

			conf, err := server.LoadServerConfig(flags.ConfigPath)
			if err != nil {
				return err
			}
			apt, err := aptsales.Default(ctx, conf)
			if err != nil {
				return err
			}
			defer apt.Close()

			u, created, err := auth.EnsureSuperuser(
				ctx, apt.User().Database(), flags.Email, flags.FullName, flags.Password,
			)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(c.Stdout(), "superuser created: %s (%s)\n", u.Email, u.Id)
			} else {
				fmt.Fprintf(c.Stdout(), "superuser updated: %s (%s)\n", u.Email, u.Id)
			}
			return nil
		},
	)).OrFatal(logger)

	os.Exit(flarc.Run(ctx, cmd))
}
