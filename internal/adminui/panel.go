package adminui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 30 * time.Second

// panelOps are the API calls and renderers behind one panel.
type panelOps[T any] struct {
	fetch  func(ctx context.Context) ([]T, error)
	save   func(ctx context.Context, editing *T, values FormValues) (string, error)
	remove func(ctx context.Context, item T) (string, error)
	values func(item T) FormValues
	label  func(item T) string
}

type loadedMsg struct {
	panel string
	items any
	err   error
}

type mutation int

const (
	mutationSave mutation = iota
	mutationDelete
)

type mutatedMsg struct {
	panel   string
	kind    mutation
	message string
	err     error
}

// panel binds a Screen to its form inputs and API calls.
type panel[T any] struct {
	name   string
	noun   string
	screen *Screen[T]
	fields []Field
	ops    panelOps[T]

	inputs []textinput.Model
	focus  int
	cursor int
}

func newPanel[T any](name, noun string, fields []Field, ops panelOps[T]) *panel[T] {
	return &panel[T]{
		name:   name,
		noun:   noun,
		screen: NewScreen[T](requiredKeys(fields)...),
		fields: fields,
		ops:    ops,
	}
}

func (p *panel[T]) Name() string {
	return p.name
}

func (p *panel[T]) InForm() bool {
	s := p.screen.State()
	return s == StateFormOpen || s == StateSubmitting
}

func (p *panel[T]) load() tea.Cmd {
	name, fetch := p.name, p.ops.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := fetch(ctx)
		return loadedMsg{panel: name, items: items, err: err}
	}
}

func (p *panel[T]) handleLoaded(msg loadedMsg) {
	if msg.err != nil {
		_ = p.screen.LoadFailed(msg.err)
		return
	}
	items, _ := msg.items.([]T)
	_ = p.screen.Loaded(items)
	if p.cursor >= len(items) {
		p.cursor = len(items) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *panel[T]) handleMutated(msg mutatedMsg) tea.Cmd {
	switch msg.kind {
	case mutationSave:
		if msg.err != nil {
			_ = p.screen.SubmitFailed(msg.err)
			return nil
		}
		p.inputs = nil
		if err := p.screen.SubmitSucceeded(msg.message); err != nil {
			return nil
		}
	case mutationDelete:
		if msg.err != nil {
			_ = p.screen.DeleteFailed(msg.err)
			return nil
		}
		if err := p.screen.DeleteSucceeded(msg.message); err != nil {
			return nil
		}
	}
	return p.load()
}

func (p *panel[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch p.screen.State() {
	case StateList, StateEmpty:
		return p.listKey(msg)
	case StateLoadFailed:
		if msg.String() == "r" && p.screen.Reload() == nil {
			return p.load()
		}
	case StateFormOpen:
		return p.formKey(msg)
	case StateDeleteConfirm:
		switch msg.String() {
		case "y", "enter":
			item, err := p.screen.Delete()
			if err != nil {
				return nil
			}
			return p.remove(item)
		case "n", "esc":
			_ = p.screen.DismissDelete()
		}
	}
	return nil
}

func (p *panel[T]) listKey(msg tea.KeyMsg) tea.Cmd {
	items := p.screen.Items()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(items)-1 {
			p.cursor++
		}
	case "r":
		if p.screen.Reload() == nil {
			return p.load()
		}
	case "n":
		if p.screen.OpenCreate(nil) == nil {
			return p.buildInputs()
		}
	case "e", "enter":
		if len(items) == 0 {
			return nil
		}
		item := items[p.cursor]
		if p.screen.OpenEdit(item, p.ops.values(item)) == nil {
			return p.buildInputs()
		}
	case "d":
		if len(items) > 0 {
			_ = p.screen.ConfirmDelete(items[p.cursor])
		}
	}
	return nil
}

func (p *panel[T]) formKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		_ = p.screen.CancelForm()
		p.inputs = nil
		return nil
	case "tab", "down":
		return p.moveFocus(1)
	case "shift+tab", "up":
		return p.moveFocus(-1)
	case "enter":
		values, err := p.screen.Submit()
		if err != nil {
			return nil
		}
		return p.save(values)
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	_ = p.screen.SetField(p.fields[p.focus].Key, p.inputs[p.focus].Value())
	return cmd
}

func (p *panel[T]) buildInputs() tea.Cmd {
	form := p.screen.Form()
	p.inputs = make([]textinput.Model, len(p.fields))
	for i, f := range p.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 2000
		ti.Width = 60
		ti.SetValue(form[f.Key])
		p.inputs[i] = ti
	}
	p.focus = 0
	return p.inputs[0].Focus()
}

func (p *panel[T]) moveFocus(delta int) tea.Cmd {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + delta + len(p.inputs)) % len(p.inputs)
	return p.inputs[p.focus].Focus()
}

func (p *panel[T]) save(values FormValues) tea.Cmd {
	name, save := p.name, p.ops.save
	var editing *T
	if item, ok := p.screen.Editing(); ok {
		editing = &item
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		message, err := save(ctx, editing, values)
		return mutatedMsg{panel: name, kind: mutationSave, message: message, err: err}
	}
}

func (p *panel[T]) remove(item T) tea.Cmd {
	name, remove := p.name, p.ops.remove
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		message, err := remove(ctx, item)
		return mutatedMsg{panel: name, kind: mutationDelete, message: message, err: err}
	}
}

func (p *panel[T]) View(st Styles, spin string) string {
	var b strings.Builder

	switch p.screen.State() {
	case StateLoading:
		fmt.Fprintf(&b, "%s Loading %s...\n", spin, p.name)
	case StateLoadFailed:
		b.WriteString(st.Error.Render(fmt.Sprintf("Could not load %s: %v", p.name, p.screen.LoadError())))
		b.WriteString("\n" + st.Muted.Render("r retry") + "\n")
	case StateEmpty:
		b.WriteString(st.Muted.Render(fmt.Sprintf("No %s yet. Press n to add one.", p.name)) + "\n")
	case StateList:
		p.writeList(&b, st)
	case StateFormOpen, StateSubmitting:
		p.writeForm(&b, st, spin)
	case StateDeleteConfirm, StateDeleting:
		p.writeList(&b, st)
		target, _ := p.screen.DeleteTarget()
		prompt := fmt.Sprintf("Delete %s %q? y/n", p.noun, p.ops.label(target))
		if p.screen.State() == StateDeleting {
			prompt = spin + " Deleting " + p.ops.label(target) + "..."
		}
		b.WriteString(st.Dialog.Render(prompt) + "\n")
	}

	if n := p.screen.Notice(); n.Kind != NoticeNone {
		style := st.Success
		if n.Kind == NoticeError {
			style = st.Error
		}
		b.WriteString("\n" + style.Render(n.Text) + "\n")
	}
	return b.String()
}

func (p *panel[T]) writeList(b *strings.Builder, st Styles) {
	for i, item := range p.screen.Items() {
		line := "  " + p.ops.label(item)
		if i == p.cursor {
			line = st.Selected.Render("> " + p.ops.label(item))
		}
		b.WriteString(line + "\n")
	}
}

func (p *panel[T]) writeForm(b *strings.Builder, st Styles, spin string) {
	title := "New " + p.noun
	if item, ok := p.screen.Editing(); ok {
		title = "Edit " + p.ops.label(item)
	}
	b.WriteString(st.Title.Render(title) + "\n\n")

	for i, f := range p.fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		view := ""
		if i < len(p.inputs) {
			view = p.inputs[i].View()
		}
		b.WriteString(st.Label.Render(label) + view + "\n")
	}
	if p.screen.State() == StateSubmitting {
		b.WriteString("\n" + spin + " Saving...\n")
	}
}
