// @title Petclinic Customers API
// @version 1.0
// @description Owners, mascotas y tipos de mascota de la clínica.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "customers",
		Usage:   "Petclinic customers service (owners y mascotas)",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Value:   ".env",
				Usage:   "Archivo .env opcional",
			},
		},
		// Sin subcomando levanta el servidor.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServe(ctx, cmd.String("env-file"))
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Levanta el servidor HTTP",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runServe(ctx, cmd.String("env-file"))
				},
			},
			{
				Name:  "migrate",
				Usage: "Aplica las migraciones de Postgres (requiere DB_DSN)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runMigrate(ctx, cmd.String("env-file"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
