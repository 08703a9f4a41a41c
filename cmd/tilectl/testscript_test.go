package main

import (
	"testing"

	"github.com/amonks/tiler/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func runScripts(t *testing.T, dir string) {
	t.Helper()
	testscript.Run(t, testscript.Params{
		Dir: dir,
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset":    testsupport.CmdEnvSet,
			"linecount": testsupport.CmdLineCount,
		},
	})
}

func TestPullScripts(t *testing.T) {
	runScripts(t, "testdata/pull")
}

func TestTreeScripts(t *testing.T) {
	runScripts(t, "testdata/tree")
}

func TestHookScripts(t *testing.T) {
	runScripts(t, "testdata/hooks")
}

func TestVersionScripts(t *testing.T) {
	runScripts(t, "testdata/version")
}

func TestHelpScripts(t *testing.T) {
	runScripts(t, "testdata/help")
}
