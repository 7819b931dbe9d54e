package ai

import (
	"os"
	"testing"

	"github.com/udisondev/monbattle/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.MustLoadData()
	os.Exit(m.Run())
}

var (
	newBattler = testutil.NewBattler
	newBattle  = testutil.NewBattle
	faint      = testutil.Faint
	hurtTo     = testutil.HurtTo
)
