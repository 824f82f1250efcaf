// Package ident issues namespaced identifiers. Callers treat the part
// after the namespace prefix as opaque; the prefix only exists so no two
// entity kinds can collide.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

type Namespace string

const (
	NamespaceMessage Namespace = "wamid"
	NamespaceMedia   Namespace = "media"
	NamespaceWebhook Namespace = "wbhk"
	NamespaceEntry   Namespace = "entry"
	NamespacePhone   Namespace = "phone"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Next returns an identifier unique within the process lifetime.
func (g *Generator) Next(ns Namespace) string {
	return fmt.Sprintf("%s.%s", ns, uuid.NewString())
}
