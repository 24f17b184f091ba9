package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mwaldrip/ledgerboard/cmd/tui/internal/view"
	"github.com/mwaldrip/ledgerboard/internal/config"
	"github.com/mwaldrip/ledgerboard/internal/customer"
	customerStore "github.com/mwaldrip/ledgerboard/internal/customer/store"
	"github.com/mwaldrip/ledgerboard/internal/database"
	"github.com/mwaldrip/ledgerboard/internal/invoice"
	invoiceStore "github.com/mwaldrip/ledgerboard/internal/invoice/store"
	"github.com/mwaldrip/ledgerboard/internal/viewcache"
)

type model struct {
	invoiceService  *invoice.Service
	customerService *customer.Service
	invoiceActions  *invoice.Actions

	currentView View

	invoicesView  view.InvoicesModel
	customersView view.CustomersModel
}

type View int

const (
	ViewMenu      View = 0
	ViewInvoices  View = 1
	ViewCustomers View = 2
)

func initialModel() model {
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

	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	customerSvc := customer.NewService(customerStore.New(db))
	actions := invoice.NewActions(invoiceSvc, viewcache.New())

	return model{
		invoiceService:  invoiceSvc,
		customerService: customerSvc,
		invoiceActions:  actions,
		currentView:     ViewMenu,
		invoicesView:    view.NewInvoicesModel(invoiceSvc, customerSvc, actions),
		customersView:   view.NewCustomersModel(customerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService, m.customerService, m.invoiceActions)

				return m, m.invoicesView.Init()
			case "2":
				m.currentView = ViewCustomers
				m.customersView = view.NewCustomersModel(m.customerService)

				return m, m.customersView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewCustomers:
		var newModel tea.Model
		newModel, cmd = m.customersView.Update(msg)
		m.customersView = newModel.(view.CustomersModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ledgerboard TUI\n\n" +
				"1. Invoices\n" +
				"2. Customers\n\n" +
				"q. Quit",
		)
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewCustomers:
		return m.customersView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
