package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/Rakhulsr/go-shipping/app/helpers"
	"github.com/Rakhulsr/go-shipping/app/models"
	"github.com/Rakhulsr/go-shipping/app/services"
	"github.com/Rakhulsr/go-shipping/app/shipping"
	"github.com/Rakhulsr/go-shipping/app/utils/format"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// App holds what the commands need from main.
type App struct {
	Service *services.ShippingService
	Serve   func(ctx context.Context) error
	Out     io.Writer
}

func NewCommand(app App) *cli.Command {
	return &cli.Command{
		Name:  "go-shipping",
		Usage: "Philippine shipping rate service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, c *cli.Command) error {
					return app.Serve(ctx)
				},
			},
			{
				Name:  "quote",
				Usage: "Price the shipping methods for a destination",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "country", Value: shipping.DomesticCountry, Usage: "destination country"},
					&cli.StringFlag{Name: "province", Usage: "destination province"},
					&cli.StringFlag{Name: "city", Usage: "destination city"},
					&cli.FloatFlag{Name: "weight", Usage: "parcel weight in kg"},
					&cli.StringFlag{Name: "method", Usage: "standard, express or overnight; prints a single fee"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return app.quote(c)
				},
			},
			{
				Name:  "rates",
				Usage: "Print the domestic rate table",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "table", Usage: "table, json or yaml"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return app.rates(c.String("format"))
				},
			},
			{
				Name:  "tiers",
				Usage: "Print the weight tiers",
				Action: func(ctx context.Context, c *cli.Command) error {
					return app.tiers()
				},
			},
		},
	}
}

func RunCli(ctx context.Context, app App, args []string) error {
	return NewCommand(app).Run(ctx, args)
}

func (a App) quote(c *cli.Command) error {
	weight := c.Float("weight")
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return helpers.ErrInvalidWeight
	}

	dest := models.Destination{
		Country:  c.String("country"),
		Province: c.String("province"),
		City:     c.String("city"),
	}

	if raw := c.String("method"); raw != "" {
		method, ok := shipping.ParseMethodID(raw)
		if !ok {
			return fmt.Errorf("unknown shipping method %q", raw)
		}
		fee := a.Service.Fee(dest, weight, method)
		_, err := fmt.Fprintf(a.Out, "%s %s: %s\n", dest.String(), fee.Method, fee.Label)
		return err
	}

	tw := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tETA\tPRICE")
	for _, m := range a.Service.Methods(dest, weight) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, m.EstimatedDays, format.Peso(m.Price))
	}
	return tw.Flush()
}

func (a App) rates(outputFormat string) error {
	rates := shipping.Rates()

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(rates)
	case "yaml":
		enc := yaml.NewEncoder(a.Out)
		enc.SetIndent(2)
		if err := enc.Encode(rates); err != nil {
			return fmt.Errorf("failed to encode rates as yaml: %w", err)
		}
		return enc.Close()
	case "table", "":
		tw := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "REGION\tPROVINCE\tSTANDARD\tEXPRESS\tOVERNIGHT")
		for _, r := range rates {
			overnight := "-"
			if r.OffersOvernight() {
				overnight = format.Peso(r.OvernightRate)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Region, r.Province,
				format.Peso(r.StandardRate), format.Peso(r.ExpressRate), overnight)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q, expected table, json or yaml", outputFormat)
	}
}

func (a App) tiers() error {
	tw := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tUP TO\tMULTIPLIER")
	for _, t := range a.Service.Tiers() {
		bound := "no limit"
		if !t.Unbounded() {
			bound = fmt.Sprintf("%g kg", t.MaxWeight)
		}
		fmt.Fprintf(tw, "%s\t%s\tx%g\n", t.Label, bound, t.Multiplier)
	}
	return tw.Flush()
}
