package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
)

func venueCommand() *cli.Command {
	return &cli.Command{
		Name:  "venue",
		Usage: "Manage venues.",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a venue; prints the assigned id.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "address", Usage: "omit for a venue with no address"},
				},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpVenueAdd, []any{
						c.String("name"), optArg(c, "address"),
					})
					if err != nil {
						return err
					}
					printAdded("venue", res)
					return nil
				},
			},
			{
				Name:  "remove",
				Usage: "Remove a venue; events held there lose the reference.",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "id", Required: true}},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpVenueRemove, []any{c.Int64("id")})
					return err
				},
			},
			{
				Name:  "modify",
				Usage: "Change fields of a venue; omitted flags stay untouched.",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "address"},
				},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpVenueModify, []any{
						c.Int64("id"), optArg(c, "name"), optArg(c, "address"),
					})
					return err
				},
			},
			{
				Name:  "find",
				Usage: "List venues with the exact given name.",
				Flags: []cli.Flag{&cli.StringFlag{Name: "name", Required: true}},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpVenueFindByName, []any{c.String("name")})
					if err != nil {
						return err
					}
					printRecords(res, formatVenue)
					return nil
				},
			},
			{
				Name:  "events",
				Usage: "List events taking place at venues with the given name.",
				Flags: []cli.Flag{&cli.StringFlag{Name: "name", Required: true}},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpVenueFindEvents, []any{c.String("name")})
					if err != nil {
						return err
					}
					printRecords(res, formatEvent)
					return nil
				},
			},
		},
	}
}
