package adminui

import (
	"context"
	"fmt"
	"strings"

	"solar-catalog-be/internal/dto"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type section interface {
	Name() string
	InForm() bool
	load() tea.Cmd
	handleLoaded(msg loadedMsg)
	handleMutated(msg mutatedMsg) tea.Cmd
	handleKey(msg tea.KeyMsg) tea.Cmd
	View(st Styles, spin string) string
}

// Model is the admin terminal program: one tab per managed entity.
type Model struct {
	sections []section
	active   int
	spinner  spinner.Model
	styles   Styles
	admin    string
}

func NewModel(client *Client, admin string) Model {
	return newModel(admin, seriesPanel(client), productPanel(client))
}

func newModel(admin string, sections ...section) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		sections: sections,
		spinner:  sp,
		styles:   DefaultStyles(),
		admin:    admin,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for _, s := range m.sections {
		cmds = append(cmds, s.load())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		current := m.sections[m.active]
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !current.InForm() {
				return m, tea.Quit
			}
		case "tab", "shift+tab":
			if !current.InForm() {
				step := 1
				if msg.String() == "shift+tab" {
					step = len(m.sections) - 1
				}
				m.active = (m.active + step) % len(m.sections)
				return m, nil
			}
		}
		return m, current.handleKey(msg)

	case loadedMsg:
		if s := m.section(msg.panel); s != nil {
			s.handleLoaded(msg)
		}
		return m, nil

	case mutatedMsg:
		if s := m.section(msg.panel); s != nil {
			return m, s.handleMutated(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Solar catalog admin"))
	if m.admin != "" {
		b.WriteString(m.styles.Muted.Render("  " + m.admin))
	}
	b.WriteString("\n\n")

	tabs := make([]string, len(m.sections))
	for i, s := range m.sections {
		if i == m.active {
			tabs[i] = m.styles.ActiveTab.Render(s.Name())
		} else {
			tabs[i] = m.styles.InactiveTab.Render(s.Name())
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	current := m.sections[m.active]
	b.WriteString(current.View(m.styles, m.spinner.View()))

	help := "tab switch • ↑/↓ move • n new • e edit • d delete • r reload • q quit"
	if current.InForm() {
		help = "tab/↑/↓ field • enter save • esc cancel"
	}
	b.WriteString("\n" + m.styles.Muted.Render(help) + "\n")
	return b.String()
}

func (m Model) section(name string) section {
	for _, s := range m.sections {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func seriesPanel(client *Client) *panel[dto.SeriesResponse] {
	return newPanel("series", "series", SeriesFields, panelOps[dto.SeriesResponse]{
		fetch: client.ListSeries,
		save: func(ctx context.Context, editing *dto.SeriesResponse, v FormValues) (string, error) {
			if editing == nil {
				req, err := CreateSeriesRequest(v)
				if err != nil {
					return "", err
				}
				created, err := client.CreateSeries(ctx, req)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Created series %s", created.Name), nil
			}
			req, err := UpdateSeriesRequest(v)
			if err != nil {
				return "", err
			}
			updated, err := client.UpdateSeries(ctx, editing.Id, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated series %s", updated.Name), nil
		},
		remove: func(ctx context.Context, s dto.SeriesResponse) (string, error) {
			if err := client.DeleteSeries(ctx, s.Id); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted series %s", s.Name), nil
		},
		values: SeriesValues,
		label: func(s dto.SeriesResponse) string {
			return fmt.Sprintf("%s (%s)", s.Name, s.Slug)
		},
	})
}

func productPanel(client *Client) *panel[*dto.ProductResponse] {
	return newPanel("products", "product", ProductFields, panelOps[*dto.ProductResponse]{
		fetch: client.ListProducts,
		save: func(ctx context.Context, editing **dto.ProductResponse, v FormValues) (string, error) {
			seriesID, err := resolveSeries(ctx, client, v["series"])
			if err != nil {
				return "", err
			}
			if editing == nil {
				req, err := CreateProductRequest(v, seriesID)
				if err != nil {
					return "", err
				}
				created, err := client.CreateProduct(ctx, req)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Created product %s", created.Name), nil
			}
			req, err := UpdateProductRequest(v, seriesID)
			if err != nil {
				return "", err
			}
			updated, err := client.UpdateProduct(ctx, (*editing).Id, req)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated product %s", updated.Name), nil
		},
		remove: func(ctx context.Context, p *dto.ProductResponse) (string, error) {
			if err := client.DeleteProduct(ctx, p.Id); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted product %s", p.Name), nil
		},
		values: ProductValues,
		label: func(p *dto.ProductResponse) string {
			if !p.Active {
				return p.Name + " [inactive]"
			}
			return p.Name
		},
	})
}

// resolveSeries accepts a series id, slug or name and returns its id.
func resolveSeries(ctx context.Context, client *Client, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	if _, err := uuid.Parse(ref); err == nil {
		return ref, nil
	}
	all, err := client.ListSeries(ctx)
	if err != nil {
		return "", err
	}
	for _, s := range all {
		if strings.EqualFold(s.Slug, ref) || strings.EqualFold(s.Name, ref) {
			return s.Id.String(), nil
		}
	}
	return "", fmt.Errorf("unknown series %q", ref)
}

// Run logs in and blocks until the program exits.
func Run(ctx context.Context, client *Client, email, password string) error {
	login, err := client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	_, err = tea.NewProgram(NewModel(client, login.Admin.Email), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
