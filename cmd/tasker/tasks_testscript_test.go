package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/okeefe/tasker/internal/testsupport"
)

func TestTaskScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/tasks",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
