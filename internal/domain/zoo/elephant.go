package zoo

import (
	"fmt"
	"io"
)

const SpeciesElephant = "Elephant"

type Elephant struct {
	base
}

func NewElephant(name string, age int, diet Diet, habitat Habitat) *Elephant {
	return &Elephant{base: newBase(name, age, SpeciesElephant, diet, habitat)}
}

func (e *Elephant) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s TRUMPETS!\n", e.name)
}

func (e *Elephant) Eat(w io.Writer) {
	fmt.Fprintf(w, "%s eats grasses, fruits and roots.\n", e.name)
}
