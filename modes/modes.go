package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode selects environment dependent defaults, such as where programs are stored
// and which config files are searched.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// ModuleForMode provides Mode and a nil *testing.T outside of tests.
type ModuleForMode struct {
	dscope.Module
	mode Mode
}

func ForProduction() ModuleForMode {
	return ModuleForMode{
		mode: ModeProduction,
	}
}

func ForDevelopment() ModuleForMode {
	return ModuleForMode{
		mode: ModeDevelopment,
	}
}

func (m ModuleForMode) T() *testing.T {
	return nil
}

func (m ModuleForMode) Mode() Mode {
	return m.mode
}

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
