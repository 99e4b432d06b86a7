package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
)

func personCommand() *cli.Command {
	return &cli.Command{
		Name:  "person",
		Usage: "Manage people.",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a person; prints the assigned id.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
				},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpPersonAdd, []any{
						c.String("name"), c.String("email"),
					})
					if err != nil {
						return err
					}
					printAdded("person", res)
					return nil
				},
			},
			{
				Name:  "remove",
				Usage: "Remove a person; their enrollments disappear with them.",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "id", Required: true}},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpPersonRemove, []any{c.Int64("id")})
					return err
				},
			},
			{
				Name:  "modify",
				Usage: "Change fields of a person; omitted flags stay untouched.",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "email"},
				},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpPersonModify, []any{
						c.Int64("id"), optArg(c, "name"), optArg(c, "email"),
					})
					return err
				},
			},
			{
				Name:  "find",
				Usage: "List people with the exact given name.",
				Flags: []cli.Flag{&cli.StringFlag{Name: "name", Required: true}},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpPersonFindByName, []any{c.String("name")})
					if err != nil {
						return err
					}
					printRecords(res, formatPerson)
					return nil
				},
			},
			{
				Name:  "events",
				Usage: "List the events a person is enrolled in.",
				Flags: []cli.Flag{&cli.StringFlag{Name: "email", Required: true}},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpPersonFindEvents, []any{c.String("email")})
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

func enrollCommand() *cli.Command {
	return &cli.Command{
		Name:  "enroll",
		Usage: "Sign a person up for an event by email.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.Int64Flag{Name: "event-id", Required: true},
		},
		Action: func(c *cli.Context) error {
			_, err := invoke(c, dispatch.OpEnroll, []any{
				c.String("email"), c.Int64("event-id"),
			})
			return err
		},
	}
}

func withdrawCommand() *cli.Command {
	return &cli.Command{
		Name:  "withdraw",
		Usage: "Remove a person from an event by email.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.Int64Flag{Name: "event-id", Required: true},
		},
		Action: func(c *cli.Context) error {
			_, err := invoke(c, dispatch.OpWithdraw, []any{
				c.String("email"), c.Int64("event-id"),
			})
			return err
		},
	}
}
