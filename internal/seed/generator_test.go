package seed

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"omni/wa-simulator/pkg/randx"
)

func TestPhoneNumber_Shape(t *testing.T) {
	g := New(randx.New(1))

	// Country code 55, two-digit area code, mobile 9 prefix, eight digits.
	shape := regexp.MustCompile(`^55\d{2}9\d{8}$`)
	for i := 0; i < 100; i++ {
		n := g.PhoneNumber()
		assert.Regexp(t, shape, n)
	}
}

func TestName_TwoParts(t *testing.T) {
	g := New(randx.New(1))

	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^\S+ \S+$`, g.Name())
	}
}

func TestBody_NeverEmpty(t *testing.T) {
	g := New(randx.New(1))

	for i := 0; i < 100; i++ {
		body := g.Body()
		assert.NotEmpty(t, body)
		assert.NotContains(t, body, "%")
	}
}

func TestContact_FullyPopulated(t *testing.T) {
	g := New(randx.New(1))

	c := g.Contact()
	assert.NotEmpty(t, c.WaID)
	assert.NotEmpty(t, c.Name)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	a := New(randx.New(99))
	b := New(randx.New(99))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.PhoneNumber(), b.PhoneNumber())
		assert.Equal(t, a.Body(), b.Body())
	}
}
