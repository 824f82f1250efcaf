// Package seed produces plausible contacts and message bodies, both for
// preloading the simulator and for synthesizing inbound traffic.
package seed

import (
	"fmt"
	"time"

	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/pkg/randx"
)

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe", "Gabriela",
	"Henrique", "Isabela", "João", "Larissa", "Marcos", "Natália",
	"Otávio", "Patrícia", "Rafael", "Sofia", "Thiago",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Costa", "Dias", "Ferreira", "Gomes", "Lima",
	"Martins", "Nascimento", "Oliveira", "Pereira", "Ribeiro", "Santos",
	"Silva", "Souza",
}

var timeTemplates = []string{
	"Your appointment is confirmed for tomorrow at %02d:00",
	"Reminder: take your medication at %02d:00",
	"Thanks! See you at %02d:00",
	"Ok, confirmed for %02d:00",
	"Can we reschedule to %02d:00?",
}

var codeTemplates = []string{
	"Your lab results are ready, code %04d",
	"Follow-up scheduled, confirmation %04d",
	"Your prescription %04d has been renewed",
	"Care plan updated, reference %04d",
	"Teleconsultation link sent, room %04d",
}

type Generator struct {
	rnd randx.Source
}

func New(rnd randx.Source) *Generator {
	return &Generator{rnd: rnd}
}

// PhoneNumber returns a Brazilian-looking mobile number in wa_id form
// (country code, area code, nine digits, no plus sign).
func (g *Generator) PhoneNumber() string {
	area := 11 + g.rnd.Int63n(78)
	return fmt.Sprintf("55%02d9%08d", area, g.rnd.Int63n(100000000))
}

func (g *Generator) Name() string {
	first := firstNames[g.rnd.Int63n(int64(len(firstNames)))]
	last := lastNames[g.rnd.Int63n(int64(len(lastNames)))]
	return first + " " + last
}

func (g *Generator) Body() string {
	if g.rnd.Float64() < 0.5 {
		tpl := timeTemplates[g.rnd.Int63n(int64(len(timeTemplates)))]
		return fmt.Sprintf(tpl, 8+g.rnd.Int63n(12))
	}
	tpl := codeTemplates[g.rnd.Int63n(int64(len(codeTemplates)))]
	return fmt.Sprintf(tpl, g.rnd.Int63n(10000))
}

// Contact assembles a full synthetic contact.
func (g *Generator) Contact() domain.Contact {
	return domain.Contact{
		WaID:      g.PhoneNumber(),
		Name:      g.Name(),
		CreatedAt: time.Now(),
	}
}
