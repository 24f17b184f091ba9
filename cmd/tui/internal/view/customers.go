package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldrip/ledgerboard/internal/customer"
)

type CustomersModel struct {
	CommonModel
	customerSvc *customer.Service

	customers []*customer.Customer
	search    textinput.Model
	searching bool
	query     string

	loading bool
	err     error
}

func NewCustomersModel(customerSvc *customer.Service) CustomersModel {
	search := textinput.New()
	search.Placeholder = "Search customers..."
	search.Width = 40

	return CustomersModel{
		customerSvc: customerSvc,
		search:      search,
	}
}

func (m CustomersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCustomersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.customers = msg.customers
		m.err = nil

		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.Blur()

				return m, nil
			case "enter":
				m.query = m.search.Value()
				m.searching = false
				m.search.Blur()
				m.loading = true

				return m, m.loadCmd()
			}

			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)

			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.searching = true
			m.search.SetValue(m.query)
			m.search.Focus()

			return m, nil
		}
	}

	return m, nil
}

var cardStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Margin(0, 1, 1, 0).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Width(36)

func (m CustomersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading customers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := "Customers"
	if m.query != "" {
		header += fmt.Sprintf(" | query: %s", activeStyle(m.query))
	}

	if m.searching {
		header = "Search: " + m.search.View()
	}

	if len(m.customers) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(header + "\n\nNo customers found.\n\n(Esc to back)")
	}

	// Lay cards out in rows of three, like the dashboard's card grid.
	var rows []string

	for i := 0; i < len(m.customers); i += 3 {
		end := min(i+3, len(m.customers))

		cards := make([]string, 0, 3)
		for _, c := range m.customers[i:end] {
			cards = append(cards, cardStyle.Render(
				fmt.Sprintf("%s\n%s\n%s",
					lipgloss.NewStyle().Bold(true).Render(c.Name),
					c.Email,
					lipgloss.NewStyle().Faint(true).Render(c.ImageURL),
				),
			))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		lipgloss.NewStyle().Faint(true).Render("/: search | r: refresh | Esc: back"),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadCustomersMsg struct {
	customers []*customer.Customer
	err       error
}

func (m CustomersModel) loadCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		customers, err := m.customerSvc.List(ctx, query)

		return loadCustomersMsg{customers: customers, err: err}
	}
}
