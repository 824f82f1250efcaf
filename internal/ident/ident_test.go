package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_Prefix(t *testing.T) {
	g := New()

	for _, ns := range []Namespace{NamespaceMessage, NamespaceMedia, NamespaceWebhook, NamespaceEntry, NamespacePhone} {
		id := g.Next(ns)
		assert.True(t, strings.HasPrefix(id, string(ns)+"."), "id %q should carry namespace %q", id, ns)
		assert.Greater(t, len(id), len(ns)+1)
	}
}

func TestNext_UniqueAcrossNamespaces(t *testing.T) {
	g := New()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		for _, ns := range []Namespace{NamespaceMessage, NamespaceMedia} {
			id := g.Next(ns)
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %q", id)
			seen[id] = struct{}{}
		}
	}
}
