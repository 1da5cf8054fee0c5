package registry

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q", g.ID())
	}

	Register("zz-a-stub", func() Game { return stubGame{id: "zz-a-stub"} })
	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz-") && strings.HasSuffix(info.ID, "stub") {
			ids = append(ids, info.ID+"/"+info.Title)
		}
	}
	if want := []string{"zz-a-stub/ZZ-A-STUB", "zz-stub/ZZ-STUB"}; !slices.Equal(ids, want) {
		t.Errorf("List = %v, want %v", ids, want)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
}
