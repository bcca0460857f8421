package main

import (
	"github.com/spf13/cobra"
)

// toolFlags binds the flags of one tool to the options store: flags left
// unset on the command line take the stored value, and --save-options
// stores the ones that were set.
type toolFlags struct {
	tool  string
	bools map[string]*bool
	strs  map[string]*string
}

func newToolFlags(tool string) *toolFlags {
	return &toolFlags{tool: tool, bools: map[string]*bool{}, strs: map[string]*string{}}
}

func (f *toolFlags) Bool(cmd *cobra.Command, name string, def bool, usage string) {
	f.bools[name] = cmd.Flags().Bool(name, def, usage)
}

func (f *toolFlags) String(cmd *cobra.Command, name, def, usage string) {
	f.strs[name] = cmd.Flags().String(name, def, usage)
}

// resolve fills unset flags from the store and saves set ones when asked.
func (f *toolFlags) resolve(cmd *cobra.Command, e *env) error {
	store, err := e.openStore()
	if err != nil {
		return err
	}
	for name, p := range f.bools {
		if cmd.Flags().Changed(name) {
			if e.saveOptions {
				if err = store.Set(f.tool, name, *p); err != nil {
					return err
				}
			}
			continue
		}
		if *p, err = store.Bool(f.tool, name, *p); err != nil {
			return err
		}
	}
	for name, p := range f.strs {
		if cmd.Flags().Changed(name) {
			if e.saveOptions {
				if err = store.Set(f.tool, name, *p); err != nil {
					return err
				}
			}
			continue
		}
		if *p, err = store.String(f.tool, name, *p); err != nil {
			return err
		}
	}
	return nil
}
