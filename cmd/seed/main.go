// Command seed loads placeholder users, customers and invoices into
// the database from CSV files, so a fresh install has something to
// show on the dashboard.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/mwaldrip/ledgerboard/internal/auth"
	authStore "github.com/mwaldrip/ledgerboard/internal/auth/store"
	"github.com/mwaldrip/ledgerboard/internal/config"
	"github.com/mwaldrip/ledgerboard/internal/customer"
	customerStore "github.com/mwaldrip/ledgerboard/internal/customer/store"
	"github.com/mwaldrip/ledgerboard/internal/database"
	"github.com/mwaldrip/ledgerboard/internal/encoding"
	"github.com/mwaldrip/ledgerboard/internal/invoice"
	invoiceStore "github.com/mwaldrip/ledgerboard/internal/invoice/store"
)

func main() {
	var (
		customersPath = flag.String("customers", "seed/customers.csv", "customers CSV (name,email,image_url)")
		invoicesPath  = flag.String("invoices", "seed/invoices.csv", "invoices CSV (customer_email,amount,status,date)")
		userName      = flag.String("user-name", "User", "seed login name")
		userEmail     = flag.String("user-email", "user@example.com", "seed login email")
		userPassword  = flag.String("user-password", "", "seed login password (required)")
	)

	flag.Parse()

	if *userPassword == "" {
		slog.Error("missing required flag", "flag", "user-password")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	users := auth.NewService(authStore.New(db))
	if _, err := users.Register(ctx, *userName, *userEmail, *userPassword); err != nil {
		slog.Error("seeding user failed", "error", err)
		os.Exit(1)
	}

	customers := customerStore.New(db)

	customerCount, err := seedCustomers(ctx, customers, *customersPath)
	if err != nil {
		slog.Error("seeding customers failed", "error", err)
		os.Exit(1)
	}

	invoiceCount, err := seedInvoices(ctx, invoiceStore.New(db), customers, *invoicesPath)
	if err != nil {
		slog.Error("seeding invoices failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete", "customers", customerCount, "invoices", invoiceCount)
}

// openCSV opens a CSV file behind a charset-detecting reader, so
// spreadsheet exports in Windows-1252 or BOM-prefixed UTF-16 load
// cleanly.
func openCSV(path string) (*csv.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return csv.NewReader(r), f.Close, nil
}

func seedCustomers(ctx context.Context, store *customerStore.Store, path string) (int, error) {
	r, closeFile, err := openCSV(path)
	if err != nil {
		return 0, err
	}
	defer closeFile()

	// Header row: name,email,image_url
	if _, err := r.Read(); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	count := 0

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return count, fmt.Errorf("reading customer row: %w", err)
		}

		c := &customer.Customer{Name: record[0], Email: record[1], ImageURL: record[2]}
		if err := store.CreateCustomer(ctx, c); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

func seedInvoices(ctx context.Context, invoices *invoiceStore.Store, customers *customerStore.Store, path string) (int, error) {
	r, closeFile, err := openCSV(path)
	if err != nil {
		return 0, err
	}
	defer closeFile()

	// Header row: customer_email,amount,status,date
	if _, err := r.Read(); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	count := 0

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return count, fmt.Errorf("reading invoice row: %w", err)
		}

		c, err := customers.GetCustomerByEmail(ctx, record[0])
		if err != nil {
			return count, fmt.Errorf("resolving customer %q: %w", record[0], err)
		}

		amount, err := decimal.NewFromString(record[1])
		if err != nil {
			return count, fmt.Errorf("parsing amount %q: %w", record[1], err)
		}

		date, err := time.Parse(time.DateOnly, record[3])
		if err != nil {
			return count, fmt.Errorf("parsing date %q: %w", record[3], err)
		}

		inv := &invoice.Invoice{
			CustomerID: c.ID,
			Amount:     amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
			Status:     invoice.Status(record[2]),
			Date:       date,
		}
		if err := invoices.CreateInvoice(ctx, inv); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}
