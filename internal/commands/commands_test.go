package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kicks-lab/internal/store"
)

type mockActions struct {
	mock.Mock
}

func (m *mockActions) Export()                 { m.Called() }
func (m *mockActions) ResetCamera()            { m.Called() }
func (m *mockActions) SetShowFPS(show bool)    { m.Called(show) }
func (m *mockActions) SetGridVisible(vis bool) { m.Called(vis) }

func setup(t *testing.T) (*Registry, *store.Store, *mockActions, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := NewRegistry(&out)
	s := store.New()
	a := &mockActions{}
	RegisterConfigurator(r, s, a)
	t.Cleanup(func() { a.AssertExpectations(t) })
	return r, s, a, &out
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd color --region laces --hex #f00")
	assert.True(t, ok)
	assert.Equal(t, []string{"color", "--region", "laces", "--hex", "#f00"}, args)

	_, ok = Parse("color --region laces")
	assert.False(t, ok)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)
}

func TestExecute_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	r := NewRegistry(nil)
	var seen []string
	r.Register("echo", "", func(fs *pflag.FlagSet) func([]string) error {
		v := fs.String("v", "", "")
		return func([]string) error {
			seen = append(seen, *v)
			return nil
		}
	})
	require.NoError(t, r.Execute([]string{"echo", "--v", "a"}))
	require.NoError(t, r.Execute([]string{"echo"}))
	assert.Equal(t, []string{"a", ""}, seen)

	assert.Error(t, r.Execute(nil))
	assert.ErrorContains(t, r.Execute([]string{"nope"}), "unknown command")
	assert.Error(t, r.Execute([]string{"echo", "--missing"}))
}

func TestColor(t *testing.T) {
	r, s, _, _ := setup(t)
	require.NoError(t, r.Submit("cmd color --region sole --hex #F00"))
	assert.Equal(t, "#ff0000", s.Color(store.Sole))
	assert.Equal(t, store.DefaultColor, s.Color(store.Laces))

	assert.ErrorIs(t, r.Submit("cmd color --region heel --hex #f00"), store.ErrUnknownRegion)
	assert.ErrorIs(t, r.Submit("cmd color --region sole --hex red"), ErrNotHex)
	assert.Equal(t, "#ff0000", s.Color(store.Sole))
}

func TestSelect(t *testing.T) {
	r, s, _, _ := setup(t)
	require.NoError(t, r.Submit("cmd select band"))
	sel, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, store.Band, sel)

	assert.ErrorIs(t, r.Submit("cmd select tongue"), store.ErrUnknownRegion)
	assert.Error(t, r.Submit("cmd select"))

	require.NoError(t, r.Submit("cmd select --none"))
	_, ok = s.Selection()
	assert.False(t, ok)
}

func TestBareHex_AppliesToSelection(t *testing.T) {
	r, s, _, out := setup(t)
	require.NoError(t, r.Submit("#00ff00"))
	assert.Contains(t, out.String(), "no region selected")
	assert.Equal(t, store.New().Colors(), s.Colors())

	require.NoError(t, s.Select(store.Patch))
	require.NoError(t, r.Submit("  #0f0 "))
	assert.Equal(t, "#00ff00", s.Color(store.Patch))

	assert.ErrorIs(t, r.Submit("make it green"), ErrNotCommand)
}

func TestColors_Listing(t *testing.T) {
	r, s, _, out := setup(t)
	require.NoError(t, s.SetColor(store.Caps, "#123456"))
	require.NoError(t, s.Select(store.Caps))
	require.NoError(t, r.Submit("cmd colors"))
	assert.Contains(t, out.String(), "caps     #123456 *")
	assert.Contains(t, out.String(), "laces    #fff\n")
}

func TestActions(t *testing.T) {
	r, _, a, _ := setup(t)
	a.On("Export").Return().Once()
	a.On("ResetCamera").Return().Once()
	a.On("SetShowFPS", true).Return().Once()
	a.On("SetGridVisible", false).Return().Once()

	require.NoError(t, r.Submit("cmd export"))
	require.NoError(t, r.Submit("cmd reset"))
	require.NoError(t, r.Submit("cmd fps --show"))
	require.NoError(t, r.Submit("cmd grid --hide"))
	assert.Error(t, r.Submit("cmd grid"))
	assert.Error(t, r.Submit("cmd fps --show --hide"))
}

func TestHelp_ListsCommands(t *testing.T) {
	r, _, _, out := setup(t)
	require.NoError(t, r.Submit("cmd help"))
	for _, name := range []string{"color", "colors", "export", "fps", "grid", "help", "reset", "select"} {
		assert.Contains(t, out.String(), "cmd "+name+":")
	}
}
