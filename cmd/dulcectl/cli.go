package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Dulceria-api/internal/application/auth"
	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/application/session"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
	"github.com/jhoicas/Dulceria-api/internal/domain"
)

var errUsage = errors.New("uso: dulcectl login|register|logout|whoami|list|buy|restock|report")

type cli struct {
	auth    *auth.AuthUseCase
	sweets  *sweets.SweetUseCase
	session *session.Manager
	report  sweets.ReportGenerator
	out     io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login", "register":
		return c.authenticate(ctx, cmd, rest)
	case "logout":
		if err := c.session.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "sesión cerrada")
		return nil
	case "whoami":
		s, err := c.session.Current(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s (%s) id=%s\n", s.User.Username, s.User.Role, s.User.ID)
		return nil
	case "list":
		return c.list(ctx, rest)
	case "buy":
		return c.stock(ctx, rest, false)
	case "restock":
		return c.stock(ctx, rest, true)
	case "report":
		return c.writeReport(ctx, rest)
	default:
		return errUsage
	}
}

func (c *cli) authenticate(ctx context.Context, cmd string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("uso: dulcectl %s USER PASS", cmd)
	}
	var (
		out *dto.AuthResponse
		err error
	)
	if cmd == "login" {
		out, err = c.auth.Login(ctx, dto.LoginRequest{Username: args[0], Password: args[1]})
	} else {
		out, err = c.auth.Register(ctx, dto.RegisterRequest{Username: args[0], Password: args[1]})
	}
	if err != nil {
		return err
	}
	if err := c.session.Save(ctx, out); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "sesión iniciada: %s (%s)\n", out.User.Username, out.User.Role)
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	if _, err := c.session.Current(ctx); err != nil {
		return err
	}
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "texto en nombre o descripción")
	category := fs.String("category", "", "categoría exacta (All = todas)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := c.sweets.Search(ctx, dto.CatalogQuery{Search: *search, Category: *category})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tPRECIO\tCANT.\tESTADO")
	for _, s := range res.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Category, s.Price.StringFixed(2), s.Quantity, status(s))
	}
	return w.Flush()
}

func (c *cli) stock(ctx context.Context, args []string, restock bool) error {
	if restock {
		if _, err := c.session.RequireAdmin(ctx); err != nil {
			return err
		}
	} else if _, err := c.session.Current(ctx); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("uso: dulcectl buy|restock ID QTY")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, args[1])
	}
	var out *dto.SweetResponse
	if restock {
		out, err = c.sweets.Restock(ctx, args[0], qty)
	} else {
		out, err = c.sweets.Purchase(ctx, args[0], qty)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s: %d en stock\n", out.Name, out.Quantity)
	return nil
}

func (c *cli) writeReport(ctx context.Context, args []string) error {
	if _, err := c.session.RequireAdmin(ctx); err != nil {
		return err
	}
	fs := pflag.NewFlagSet("report", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("out", "inventario.pdf", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pdf, err := c.sweets.InventoryReport(ctx, c.report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*path, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir reporte: %w", err)
	}
	fmt.Fprintf(c.out, "reporte escrito en %s\n", *path)
	return nil
}

func status(s dto.SweetResponse) string {
	switch {
	case s.OutOfStock:
		return "agotado"
	case s.LowStock:
		return "poco stock"
	default:
		return "ok"
	}
}
