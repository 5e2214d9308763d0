package adminui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	items   []item
	saveErr error
	saved   []FormValues
	removed []int
}

func (f *fakeStore) panel() *panel[item] {
	return newPanel("items", "item", []Field{{Key: "name", Label: "Name", Required: true}}, panelOps[item]{
		fetch: func(ctx context.Context) ([]item, error) {
			return append([]item(nil), f.items...), nil
		},
		save: func(ctx context.Context, editing *item, v FormValues) (string, error) {
			if f.saveErr != nil {
				return "", f.saveErr
			}
			f.saved = append(f.saved, v)
			if editing == nil {
				f.items = append(f.items, item{ID: len(f.items) + 1, Name: v["name"]})
				return "Created", nil
			}
			return "Updated", nil
		},
		remove: func(ctx context.Context, it item) (string, error) {
			f.removed = append(f.removed, it.ID)
			return "Deleted", nil
		},
		values: func(it item) FormValues { return FormValues{"name": it.Name} },
		label:  func(it item) string { return it.Name },
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// deliver runs cmd and routes its result back into p.
func deliver(t *testing.T, p *panel[item], cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case loadedMsg:
		p.handleLoaded(msg)
	case mutatedMsg:
		next := p.handleMutated(msg)
		if next != nil {
			deliver(t, p, next)
		}
	default:
		t.Fatalf("unexpected message %T", msg)
	}
}

func TestPanel_CreateThroughForm(t *testing.T) {
	store := &fakeStore{}
	p := store.panel()
	deliver(t, p, p.load())
	assert.Equal(t, StateEmpty, p.screen.State())

	p.handleKey(runes("n"))
	require.Equal(t, StateFormOpen, p.screen.State())

	p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateFormOpen, p.screen.State())
	assert.Equal(t, NoticeError, p.screen.Notice().Kind)

	p.handleKey(runes("REX"))
	assert.Equal(t, "REX", p.screen.Form()["name"])

	cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateSubmitting, p.screen.State())
	assert.Nil(t, p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}))

	deliver(t, p, cmd)
	assert.Equal(t, StateList, p.screen.State())
	assert.Equal(t, []item{{ID: 1, Name: "REX"}}, p.screen.Items())
	assert.Equal(t, "Created", p.screen.Notice().Text)
}

func TestPanel_SaveFailureKeepsForm(t *testing.T) {
	store := &fakeStore{items: []item{{ID: 1, Name: "REX"}}, saveErr: errors.New("Series name already exists")}
	p := store.panel()
	deliver(t, p, p.load())

	p.handleKey(runes("e"))
	require.Equal(t, StateFormOpen, p.screen.State())
	assert.Equal(t, "REX", p.inputs[0].Value())

	deliver(t, p, p.handleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, StateFormOpen, p.screen.State())
	assert.Equal(t, "Series name already exists", p.screen.Notice().Text)

	p.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateList, p.screen.State())
}

func TestPanel_DeleteConfirmation(t *testing.T) {
	store := &fakeStore{items: []item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
	p := store.panel()
	deliver(t, p, p.load())

	p.handleKey(runes("j"))
	p.handleKey(runes("d"))
	require.Equal(t, StateDeleteConfirm, p.screen.State())
	assert.Contains(t, p.View(DefaultStyles(), "*"), `Delete item "B"? y/n`)

	p.handleKey(runes("n"))
	assert.Equal(t, StateList, p.screen.State())
	assert.Empty(t, store.removed)

	p.handleKey(runes("d"))
	deliver(t, p, p.handleKey(runes("y")))
	assert.Equal(t, []int{2}, store.removed)
	assert.Equal(t, "Deleted", p.screen.Notice().Text)
}

func TestModel_TabSwitchesOutsideForms(t *testing.T) {
	first, second := (&fakeStore{}).panel(), (&fakeStore{}).panel()
	second.name = "others"
	m := newModel("admin@example.com", first, second)

	deliver(t, first, first.load())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, 1, m.active)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, 0, m.active)

	first.handleKey(runes("n"))
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, 0, m.active)
}
