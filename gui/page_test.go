//go:build js
// +build js

package gui

import "testing"

func TestMutationOptions(t *testing.T) {
	o := mutationOptions()
	for _, k := range []string{"childList", "subtree", "attributes", "characterData"} {
		if v, ok := o[k].(bool); !ok || !v {
			t.Errorf("%s: %v != true", k, o[k])
		}
	}
}
