package zoo

import "io"

// Animal es el contrato polimórfico que cumple cada especie concreta.
// Las instancias solo se construyen desde el constructor de su especie,
// que es quien fija Species().
type Animal interface {
	Name() string
	Age() int
	Species() string
	Diet() Diet
	Habitat() Habitat

	MakeSound(w io.Writer)
	Eat(w io.Writer)
}

// Releaser lo implementan las especies que retienen recursos propios.
// Zoo.Release lo invoca a través del handle polimórfico.
type Releaser interface {
	Release()
}

// base agrupa el estado común. Se embebe por valor en cada especie;
// Diet y Habitat se copian, no se comparten.
type base struct {
	name    string
	age     int
	species string
	diet    Diet
	habitat Habitat
}

func newBase(name string, age int, species string, diet Diet, habitat Habitat) base {
	return base{
		name:    name,
		age:     age,
		species: species,
		diet:    diet,
		habitat: habitat,
	}
}

func (b base) Name() string     { return b.name }
func (b base) Age() int         { return b.age }
func (b base) Species() string  { return b.species }
func (b base) Diet() Diet       { return b.diet }
func (b base) Habitat() Habitat { return b.habitat }
