package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mwaldrip/ledgerboard/internal/customer"
	"github.com/mwaldrip/ledgerboard/internal/invoice"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateSearch
	invoicesStateForm
)

type InvoicesModel struct {
	CommonModel
	invoiceSvc  *invoice.Service
	customerSvc *customer.Service
	actions     *invoice.Actions

	state invoicesState
	table table.Model
	invs  []*invoice.Invoice
	form  *huh.Form

	search textinput.Model
	query  string

	// Form bindings; editID is nil while creating.
	editID       *uuid.UUID
	formCustomer string
	formAmount   string
	formStatus   string

	loading bool
	err     error
	status  string
}

func NewInvoicesModel(invoiceSvc *invoice.Service, customerSvc *customer.Service, actions *invoice.Actions) InvoicesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Amount", Width: 10},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "Search invoices..."
	search.Width = 40

	return InvoicesModel{
		invoiceSvc:  invoiceSvc,
		customerSvc: customerSvc,
		actions:     actions,
		table:       t,
		search:      search,
	}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.invs = msg.invs
		m.err = nil
		m.refreshTable()

		return m, nil

	case actionDoneMsg:
		m.state = invoicesStateBrowse
		m.form = nil
		m.editID = nil
		m.table.Focus()

		if msg.result.Failed() {
			m.status = formatResult(msg.result)
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStateSearch:
		return m.updateSearch(msg)
	case invoicesStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = invoicesStateSearch
			m.table.Blur()
			m.search.SetValue(m.query)
			m.search.Focus()

			return m, nil
		case "n":
			return m.enterForm(nil)
		case "e":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.invs) {
				return m.enterForm(m.invs[idx])
			}

			return m, nil
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.invs) {
				return m, m.deleteCmd(m.invs[idx].ID)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = invoicesStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, nil
		case "enter":
			m.query = m.search.Value()
			m.state = invoicesStateBrowse
			m.search.Blur()
			m.table.Focus()
			m.loading = true

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m InvoicesModel) enterForm(inv *invoice.Invoice) (tea.Model, tea.Cmd) {
	ctx, cancel := DbCtx()
	defer cancel()

	customers, err := m.customerSvc.List(ctx, "")
	if err != nil {
		m.status = fmt.Sprintf("Error loading customers: %v", err)
		return m, nil
	}

	options := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		options = append(options, huh.NewOption(fmt.Sprintf("%s <%s>", c.Name, c.Email), c.ID.String()))
	}

	m.formCustomer = ""
	m.formAmount = ""
	m.formStatus = string(invoice.StatusPending)
	m.editID = nil

	if inv != nil {
		id := inv.ID
		m.editID = &id
		m.formCustomer = inv.CustomerID.String()
		m.formAmount = fmt.Sprintf("%.2f", float64(inv.Amount)/100.0)
		m.formStatus = string(inv.Status)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("customerId").
				Title("Customer").
				Options(options...).
				Value(&m.formCustomer),

			huh.NewInput().
				Key("amount").
				Title("Amount (USD)").
				Placeholder("15.50").
				Value(&m.formAmount),

			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Pending", string(invoice.StatusPending)),
					huh.NewOption("Paid", string(invoice.StatusPaid)),
				).
				Value(&m.formStatus),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = invoicesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoicesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoicesStateBrowse
			m.form = nil
			m.editID = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.submitCmd()
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := "Invoices"
	if m.query != "" {
		header += fmt.Sprintf(" | query: %s", activeStyle(m.query))
	}

	if m.state == invoicesStateSearch {
		header = "Search: " + m.search.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render("/: search | n: new | e: edit | x: delete | r: refresh | Esc: back"),
	)

	if m.state == invoicesStateForm && m.form != nil {
		title := "New Invoice"
		if m.editID != nil {
			title = "Edit Invoice"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invs))

	for _, inv := range m.invs {
		name, email := "", ""
		if inv.Customer != nil {
			name = inv.Customer.Name
			email = inv.Customer.Email
		}

		rows = append(rows, table.Row{
			FormatDate(inv.Date),
			name,
			email,
			FormatAmount(inv.Amount),
			string(inv.Status),
		})
	}

	m.table.SetRows(rows)
}

// formatResult flattens a failed pipeline result into one status line.
func formatResult(res invoice.Result) string {
	parts := []string{res.Message}

	for _, field := range []string{"customerId", "amount", "status"} {
		for _, msg := range res.Errors[field] {
			parts = append(parts, msg)
		}
	}

	return strings.Join(parts, " ")
}

// Messages

type loadInvoicesMsg struct {
	invs []*invoice.Invoice
	err  error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invs, err := m.invoiceSvc.List(ctx, invoice.ListFilter{Query: query})

		return loadInvoicesMsg{invs: invs, err: err}
	}
}

type actionDoneMsg struct {
	result invoice.Result
}

// submitCmd pushes the form through the same mutation pipeline the
// HTTP handlers use, so field errors surface here identically.
func (m InvoicesModel) submitCmd() tea.Cmd {
	form := invoice.FormValues{
		"customerId": m.formCustomer,
		"amount":     m.formAmount,
		"status":     m.formStatus,
	}
	editID := m.editID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editID != nil {
			return actionDoneMsg{result: m.actions.Update(ctx, editID.String(), form)}
		}

		return actionDoneMsg{result: m.actions.Create(ctx, form)}
	}
}

func (m InvoicesModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return actionDoneMsg{result: m.actions.Delete(ctx, id)}
	}
}
