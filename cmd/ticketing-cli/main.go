package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"ticketing/entity"
	"ticketing/purchase"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("ticketing-cli failed")
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "ticketing-cli",
		Usage:  "check ticket purchases",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "quote",
				Usage: "validate a purchase and print its seats and cost",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:     "account-id",
						Usage:    "purchasing account",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "ticket",
						Usage:    "TYPE=QUANTITY, e.g. ADULT=2, repeatable",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					requests, err := parseTicketTypeRequests(c.StringSlice("ticket"))
					if err != nil {
						return err
					}

					summary, err := purchase.Quote(c.Int64("account-id"), requests...)
					if err != nil {
						return err
					}

					_, err = fmt.Fprintf(c.App.Writer, "total seats: %d\ntotal cost: %d\n", summary.TotalSeats, summary.TotalCost)
					return err
				},
			},
		},
	}
}

func parseTicketTypeRequests(values []string) ([]entity.TicketTypeRequest, error) {
	requests := make([]entity.TicketTypeRequest, 0, len(values))
	for _, value := range values {
		name, quantity, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("ticket %q is not TYPE=QUANTITY", value)
		}

		ticketType, err := entity.ParseTicketType(name)
		if err != nil {
			return nil, err
		}

		numberOfTickets, err := strconv.Atoi(strings.TrimSpace(quantity))
		if err != nil {
			return nil, fmt.Errorf("ticket %q has invalid quantity: %w", value, err)
		}

		requests = append(requests, entity.NewTicketTypeRequest(ticketType, numberOfTickets))
	}

	return requests, nil
}
