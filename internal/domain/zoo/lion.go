package zoo

import (
	"fmt"
	"io"
)

const SpeciesLion = "Lion"

type Lion struct {
	base
}

func NewLion(name string, age int, diet Diet, habitat Habitat) *Lion {
	return &Lion{base: newBase(name, age, SpeciesLion, diet, habitat)}
}

func (l *Lion) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s ROARS!\n", l.name)
}

func (l *Lion) Eat(w io.Writer) {
	fmt.Fprintf(w, "%s eats meat.\n", l.name)
}
