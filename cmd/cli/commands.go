package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/amirasaad/cryptomath/infra/initializer"
	"github.com/amirasaad/cryptomath/infra/sqlite"
	"github.com/amirasaad/cryptomath/pkg/config"
	"github.com/amirasaad/cryptomath/pkg/money"
	"github.com/amirasaad/cryptomath/pkg/service/calc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type cli struct {
	registryFile string
	dsn          string
	verbose      bool

	cfg *config.App
	svc *calc.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "cryptomath",
		Short:         "Exact arithmetic on cryptocurrency amounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.init()
		},
	}
	root.PersistentFlags().StringVar(&c.registryFile, "registry", "", "YAML currency registry (default: built-in)")
	root.PersistentFlags().StringVar(&c.dsn, "dsn", "", "SQLite DSN for the sql command (default: DATABASE_DSN)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log to stdout")

	root.AddCommand(
		c.currenciesCmd(),
		c.denomsCmd(),
		c.binaryCmd("add", "Add b to a", (*calc.Service).Add),
		c.binaryCmd("sub", "Subtract b from a", (*calc.Service).Sub),
		c.binaryCmd("mul", "Multiply an amount by a decimal scalar", (*calc.Service).Mul),
		c.divCmd(),
		c.cmpCmd(),
		c.convertCmd(),
		c.reduceCmd(),
		c.sqlCmd(),
	)
	return root
}

func (c *cli) init() error {
	var logger *slog.Logger
	if c.verbose {
		logger = initializer.SetupLogger(&config.Log{Level: -4, Format: "text", Prefix: "[cryptomath]"})
	} else {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.registryFile != "" {
		cfg.Registry.File = c.registryFile
	}
	if c.dsn != "" {
		cfg.DB.DSN = c.dsn
	}

	reg, err := initializer.LoadRegistry(cfg.Registry, logger)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.svc = calc.New(reg, logger, calc.WithSumWorkers(cfg.Calc.SumWorkers))
	return nil
}

func table(w io.Writer, header []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	// wrap to the terminal; keep long values on one line when piped
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && len(header) > 0 {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			t.SetColWidth(width / len(header))
		}
	} else {
		t.SetAutoWrapText(false)
	}
	t.AppendBulk(rows)
	t.Render()
}

func (c *cli) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "currencies",
		Aliases: []string{"ls"},
		Short:   "List currencies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := c.svc.Registry()
			var rows [][]string
			for _, m := range reg.Currencies() {
				cur, err := reg.CurrencyForSymbol(m.Symbol)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					m.Symbol,
					m.Name,
					cur.Primary().Symbol(),
					strconv.Itoa(len(reg.DenomsOf(cur))),
				})
			}
			table(cmd.OutOrStdout(), []string{"Symbol", "Name", "Primary", "Denominations"}, rows)
			return nil
		},
	}
}

func (c *cli) denomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "denoms [<currency>]",
		Short: "List denominations, optionally of one currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := c.svc.Registry()
			var rows [][]string
			if len(args) == 1 {
				cur, err := reg.CurrencyForSymbol(args[0])
				if err != nil {
					return err
				}
				for _, d := range reg.DenomsOf(cur) {
					rows = append(rows, []string{cur.Symbol(), d.Symbol(), d.Name(), strconv.Itoa(int(d.Decimals()))})
				}
			} else {
				for _, d := range reg.Denoms() {
					rows = append(rows, []string{d.Currency, d.Symbol, d.Name, strconv.Itoa(int(d.Decimals))})
				}
			}
			table(cmd.OutOrStdout(), []string{"Currency", "Symbol", "Name", "Decimals"}, rows)
			return nil
		},
	}
}

type binaryFunc func(svc *calc.Service, cur, denom, a, b string) (string, error)

func (c *cli) binaryCmd(use, short string, op binaryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <currency> <denom> <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := op(c.svc, args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (c *cli) divCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "div <currency> <denom> <amount> <scalar>",
		Short: "Divide an amount by a decimal scalar",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				mode = c.cfg.Calc.Rounding
			}
			rounding, err := money.ParseRounding(mode)
			if err != nil {
				return err
			}
			out, err := c.svc.Div(args[0], args[1], args[2], args[3], rounding)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "rounding: trunc, floor or ceil (default: CALC_ROUNDING)")
	return cmd
}

func (c *cli) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <currency> <denom> <a> <b>",
		Short: "Compare two amounts, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.svc.Cmp(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (c *cli) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <currency> <from> <to> <amount>",
		Aliases: []string{"scale"},
		Short:   "Re-express an amount in another denomination",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.svc.Convert(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (c *cli) reduceCmd() *cobra.Command {
	var kind, final string
	cmd := &cobra.Command{
		Use:   "reduce <currency> <denom> <amount>...",
		Short: "Sum, or take the max or min of, a list of amounts",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := calc.ParseKind(kind)
			if err != nil {
				return err
			}
			if final == "" {
				final = args[1]
			}
			out, err := c.svc.Reduce(cmd.Context(), k, args[0], args[1], final, args[2:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "sum", "aggregate: sum, max or min")
	cmd.Flags().StringVar(&final, "final", "", "denomination of the result (default: <denom>)")
	return cmd
}

func (c *cli) sqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sql <query>",
		Short: "Run a query with the crypto_* functions installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := sqlite.OpenDB(c.svc, c.cfg.DB.DSN)
			defer db.Close() //nolint:errcheck
			db.SetMaxOpenConns(1)
			return query(cmd.Context(), cmd.OutOrStdout(), db, args[0])
		},
	}
}

func query(ctx context.Context, w io.Writer, db *sql.DB, q string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	table(w, cols, out)
	return nil
}
