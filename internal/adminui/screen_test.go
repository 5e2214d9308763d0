package adminui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func loadedScreen(t *testing.T, items ...item) *Screen[item] {
	t.Helper()
	s := NewScreen[item]("name")
	require.NoError(t, s.Loaded(items))
	return s
}

func TestScreen_LoadOutcomes(t *testing.T) {
	s := NewScreen[item]()
	assert.Equal(t, StateLoading, s.State())

	require.NoError(t, s.Loaded(nil))
	assert.Equal(t, StateEmpty, s.State())

	require.NoError(t, s.Reload())
	require.NoError(t, s.Loaded([]item{{ID: 1}}))
	assert.Equal(t, StateList, s.State())

	require.NoError(t, s.Reload())
	require.NoError(t, s.LoadFailed(errors.New("offline")))
	assert.Equal(t, StateLoadFailed, s.State())
	assert.EqualError(t, s.LoadError(), "offline")

	require.NoError(t, s.Reload())
	assert.Equal(t, StateLoading, s.State())
	assert.ErrorIs(t, s.Reload(), ErrInvalidTransition)
}

func TestScreen_CreateFlow(t *testing.T) {
	s := loadedScreen(t)

	require.NoError(t, s.OpenCreate(nil))
	assert.Equal(t, StateFormOpen, s.State())
	_, editing := s.Editing()
	assert.False(t, editing)

	_, err := s.Submit()
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"name"}, missing.Fields)
	assert.Equal(t, StateFormOpen, s.State())
	assert.Equal(t, NoticeError, s.Notice().Kind)

	require.NoError(t, s.SetField("name", "REX"))
	values, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "REX", values["name"])
	assert.Equal(t, StateSubmitting, s.State())
	assert.True(t, s.Busy())

	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrBusy)

	require.NoError(t, s.SubmitSucceeded("Created"))
	assert.Equal(t, StateLoading, s.State())
	assert.Nil(t, s.Form())

	require.NoError(t, s.Loaded([]item{{ID: 1, Name: "REX"}}))
	assert.Equal(t, StateList, s.State())
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: "Created"}, s.Notice())
}

func TestScreen_SubmitFailureKeepsInput(t *testing.T) {
	s := loadedScreen(t, item{ID: 1, Name: "REX"})

	require.NoError(t, s.OpenEdit(item{ID: 1, Name: "REX"}, FormValues{"name": "REX"}))
	require.NoError(t, s.SetField("name", "REX 2"))
	_, err := s.Submit()
	require.NoError(t, err)

	require.NoError(t, s.SubmitFailed(errors.New("Series name already exists")))
	assert.Equal(t, StateFormOpen, s.State())
	assert.Equal(t, "REX 2", s.Form()["name"])
	assert.Equal(t, "Series name already exists", s.Notice().Text)

	edited, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, 1, edited.ID)

	require.NoError(t, s.CancelForm())
	assert.Equal(t, StateList, s.State())
}

func TestScreen_OpenEditSeedsCopy(t *testing.T) {
	s := loadedScreen(t, item{ID: 1})
	seed := FormValues{"name": "A"}

	require.NoError(t, s.OpenEdit(item{ID: 1}, seed))
	require.NoError(t, s.SetField("name", "B"))
	assert.Equal(t, "A", seed["name"])
}

func TestScreen_DeleteFlow(t *testing.T) {
	s := loadedScreen(t, item{ID: 1}, item{ID: 2})

	require.NoError(t, s.ConfirmDelete(item{ID: 2}))
	assert.Equal(t, StateDeleteConfirm, s.State())
	require.NoError(t, s.DismissDelete())
	assert.Equal(t, StateList, s.State())

	require.NoError(t, s.ConfirmDelete(item{ID: 2}))
	target, err := s.Delete()
	require.NoError(t, err)
	assert.Equal(t, 2, target.ID)

	_, err = s.Delete()
	assert.ErrorIs(t, err, ErrBusy)

	require.NoError(t, s.DeleteFailed(errors.New("Series has products")))
	assert.Equal(t, StateDeleteConfirm, s.State())
	assert.Equal(t, NoticeError, s.Notice().Kind)

	_, err = s.Delete()
	require.NoError(t, err)
	require.NoError(t, s.DeleteSucceeded("Deleted"))
	assert.Equal(t, StateLoading, s.State())
	_, ok := s.DeleteTarget()
	assert.False(t, ok)
}

func TestScreen_RejectsOutOfStateActions(t *testing.T) {
	s := NewScreen[item]()

	assert.ErrorIs(t, s.OpenCreate(nil), ErrInvalidTransition)
	assert.ErrorIs(t, s.ConfirmDelete(item{}), ErrInvalidTransition)
	assert.ErrorIs(t, s.SetField("name", "x"), ErrInvalidTransition)
	assert.ErrorIs(t, s.SubmitSucceeded("ok"), ErrInvalidTransition)

	require.NoError(t, s.Loaded(nil))
	assert.ErrorIs(t, s.OpenEdit(item{}, nil), ErrInvalidTransition)
	assert.ErrorIs(t, s.Loaded(nil), ErrInvalidTransition)
}
