package zoo

import "io"

// CanonicalAnimal describe una entrada del escenario fijo.
type CanonicalAnimal struct {
	Kind    Kind
	Name    string
	Age     int
	Diet    string
	Habitat string
}

// Canonical es el escenario fijo: dos leones y dos elefantes, en este orden.
func Canonical() []CanonicalAnimal {
	return []CanonicalAnimal{
		{Kind: KindLion, Name: "Thor", Age: 5, Diet: "Carnivore", Habitat: "Savanna"},
		{Kind: KindLion, Name: "Theo", Age: 6, Diet: "Carnivore", Habitat: "Savanna"},
		{Kind: KindElephant, Name: "Kibo", Age: 8, Diet: "Herbivore", Habitat: "Forest"},
		{Kind: KindElephant, Name: "Kali", Age: 10, Diet: "Herbivore", Habitat: "Forest"},
	}
}

// CanonicalZoo arma la colección del escenario fijo.
func CanonicalZoo() *Zoo {
	carnivore := NewDiet("Carnivore")
	herbivore := NewDiet("Herbivore")

	savanna := NewHabitat("Savanna")
	forest := NewHabitat("Forest")

	z := NewZoo()
	z.Add(NewLion("Thor", 5, carnivore, savanna))
	z.Add(NewLion("Theo", 6, carnivore, savanna))
	z.Add(NewElephant("Kibo", 8, herbivore, forest))
	z.Add(NewElephant("Kali", 10, herbivore, forest))
	return z
}

// RunScenario imprime el reporte del escenario fijo y libera la colección.
func RunScenario(w io.Writer) {
	z := CanonicalZoo()
	defer z.Release()

	z.WriteReport(w)
}
