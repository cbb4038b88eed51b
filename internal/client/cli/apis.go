package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/flowgate/internal/client/client"
	"github.com/dmitrijs2005/flowgate/internal/client/models"
	"github.com/dmitrijs2005/flowgate/internal/client/services"
	"github.com/dmitrijs2005/flowgate/internal/common"
)

var statusColors = map[models.APIStatus]*color.Color{
	models.APIStatusActive:      color.New(color.FgGreen),
	models.APIStatusRateLimited: color.New(color.FgYellow),
	models.APIStatusInactive:    color.New(color.FgHiBlack),
}

func statusText(s models.APIStatus) string {
	label := s.Label()
	if s == models.APIStatusRateLimited {
		label += " (throttled)"
	}
	if c, ok := statusColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

// describe turns a dashboard failure into a line for the user.
func describe(err error) string {
	var ie *services.InputError
	switch {
	case errors.As(err, &ie):
		return ie.Error()
	case errors.Is(err, services.ErrNotFound):
		return err.Error()
	case errors.Is(err, client.ErrUnauthorized):
		return "The server rejected your session. Run 'logout' and sign in again."
	case errors.Is(err, client.ErrUnavailable):
		return "The gateway is unreachable. Try again later."
	}
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	return "Request failed."
}

func (a *App) fail(ctx context.Context, op string, err error) error {
	a.log.Warn(ctx, op+" failed", "error", err)
	printError(a.out, describe(err))
	return err
}

// List prints the user's APIs, one per row.
func (a *App) List(ctx context.Context) error {
	items, err := a.apis.List(ctx)
	if err != nil {
		return a.fail(ctx, "list", err)
	}
	if len(items) == 0 {
		_, _ = fmt.Fprintln(a.out, "No APIs yet. Use 'create' to add one.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTARGET\tCAPACITY\tREFILL/S\tSTATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			it.ID, it.Name, it.TargetURL, it.Capacity,
			strconv.FormatFloat(it.RefillRate, 'f', -1, 64), statusText(it.Status))
	}
	return tw.Flush()
}

// Create asks for the new API's settings and provisions it.
func (a *App) Create(ctx context.Context) error {
	var (
		in  services.CreateAPIInput
		err error
	)
	if in.Name, err = getSimpleText(a.reader, "API name", a.out); err != nil {
		return err
	}
	if in.TargetURL, err = getSimpleText(a.reader, "Target URL (e.g. https://api.example.com)", a.out); err != nil {
		return err
	}
	if in.Capacity, err = getDefaultText(a.reader, "Bucket capacity (requests)", "10", a.out); err != nil {
		return err
	}
	if in.RefillRate, err = getDefaultText(a.reader, "Refill rate (tokens per second)", "1", a.out); err != nil {
		return err
	}

	res, err := a.apis.Create(ctx, in)
	if err != nil {
		return a.fail(ctx, "create", err)
	}

	printSuccess(a.out, fmt.Sprintf("Created %s (id %s)", res.Name, res.ID))
	return a.printUsage(res)
}

// Usage prints how to call an API through the gateway proxy.
func (a *App) Usage(ctx context.Context, ref string) error {
	res, err := a.apis.Find(ctx, ref)
	if err != nil {
		return a.fail(ctx, "usage", err)
	}
	return a.printUsage(res)
}

func (a *App) printUsage(res *models.APIResource) error {
	body, err := json.MarshalIndent(models.ProxyRequest{Path: "/", Method: http.MethodGet}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "API key: %s\n\n", res.APIKey)
	fmt.Fprintf(a.out, "POST %s\n%s: %s\nContent-Type: application/json\n\n%s\n\n",
		a.config.ProxyURL, common.APIKeyHeader, res.APIKey, body)
	fmt.Fprintln(a.out, mutedColor.Sprintf("Requests are forwarded to %s%s; 'data' is sent as the JSON body.",
		res.TargetURL, "<path>"))
	return nil
}
