package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
)

func eventCommand() *cli.Command {
	return &cli.Command{
		Name:  "event",
		Usage: "Manage events.",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add an event; prints the assigned id.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "start-date", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringFlag{Name: "start-time", Required: true, Usage: "HH:MM"},
					&cli.StringFlag{Name: "end-date", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringFlag{Name: "end-time", Required: true, Usage: "HH:MM"},
					&cli.StringFlag{Name: "description"},
				},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpEventAdd, []any{
						c.String("name"),
						c.String("start-date"), c.String("start-time"),
						c.String("end-date"), c.String("end-time"),
						c.String("description"),
					})
					if err != nil {
						return err
					}
					printAdded("event", res)
					return nil
				},
			},
			{
				Name:  "remove",
				Usage: "Remove an event; enrolled people are kept.",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "id", Required: true}},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpEventRemove, []any{c.Int64("id")})
					return err
				},
			},
			{
				Name:  "modify",
				Usage: "Change fields of an event; omitted flags stay untouched.",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "start-date"},
					&cli.StringFlag{Name: "start-time"},
					&cli.StringFlag{Name: "end-date"},
					&cli.StringFlag{Name: "end-time"},
					&cli.StringFlag{Name: "description"},
				},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpEventModify, []any{
						c.Int64("id"),
						optArg(c, "name"),
						optArg(c, "start-date"), optArg(c, "start-time"),
						optArg(c, "end-date"), optArg(c, "end-time"),
						optArg(c, "description"),
					})
					return err
				},
			},
			{
				Name:  "find",
				Usage: "List events with the exact given name.",
				Flags: []cli.Flag{&cli.StringFlag{Name: "name", Required: true}},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpEventFindByName, []any{c.String("name")})
					if err != nil {
						return err
					}
					printRecords(res, formatEvent)
					return nil
				},
			},
			{
				Name:  "assign-venue",
				Usage: "Assign a venue to an event.",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "venue-id", Required: true},
					&cli.Int64Flag{Name: "event-id", Required: true},
				},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpEventAssign, []any{
						c.Int64("venue-id"), c.Int64("event-id"),
					})
					return err
				},
			},
			{
				Name:  "unassign-venue",
				Usage: "Clear an event's venue.",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "event-id", Required: true}},
				Action: func(c *cli.Context) error {
					_, err := invoke(c, dispatch.OpEventUnassign, []any{c.Int64("event-id")})
					return err
				},
			},
			{
				Name:  "attendees",
				Usage: "List the people enrolled in an event.",
				Flags: []cli.Flag{&cli.Int64Flag{Name: "event-id", Required: true}},
				Action: func(c *cli.Context) error {
					res, err := invoke(c, dispatch.OpEventAttendees, []any{c.Int64("event-id")})
					if err != nil {
						return err
					}
					printRecords(res, formatPerson)
					return nil
				},
			},
		},
	}
}
