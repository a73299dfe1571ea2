package zoo

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalReport = `All animals making sounds:
Thor ROARS!
Theo ROARS!
Kibo TRUMPETS!
Kali TRUMPETS!

Animal Information:
Name: Thor
Age: 5 years old
Species: Lion
Diet type: Carnivore
Habitat description: Savanna

Name: Theo
Age: 6 years old
Species: Lion
Diet type: Carnivore
Habitat description: Savanna

Name: Kibo
Age: 8 years old
Species: Elephant
Diet type: Herbivore
Habitat description: Forest

Name: Kali
Age: 10 years old
Species: Elephant
Diet type: Herbivore
Habitat description: Forest

`

func TestRunScenario_CanonicalOutput(t *testing.T) {
	var buf bytes.Buffer
	RunScenario(&buf)
	assert.Equal(t, canonicalReport, buf.String())
}

func TestRunScenario_Idempotent(t *testing.T) {
	var first, second bytes.Buffer
	RunScenario(&first)
	RunScenario(&second)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestSpeciesFixedPerKind(t *testing.T) {
	d, h := NewDiet("x"), NewHabitat("y")

	for _, name := range []string{"a", "b", "c"} {
		assert.Equal(t, "Lion", NewLion(name, 1, d, h).Species())
		assert.Equal(t, "Elephant", NewElephant(name, 1, d, h).Species())
	}
}

func TestDynamicDispatchFollowsInsertionOrder(t *testing.T) {
	d, h := NewDiet("Omnivore"), NewHabitat("Zoo")
	animals := []Animal{
		NewElephant("E1", 1, d, h),
		NewLion("L1", 2, d, h),
		NewElephant("E2", 3, d, h),
	}

	var buf bytes.Buffer
	MakeAllAnimalsSound(&buf, animals)
	assert.Equal(t, "E1 TRUMPETS!\nL1 ROARS!\nE2 TRUMPETS!\n", buf.String())

	buf.Reset()
	for _, a := range animals {
		a.Eat(&buf)
	}
	assert.Equal(t,
		"E1 eats grasses, fruits and roots.\nL1 eats meat.\nE2 eats grasses, fruits and roots.\n",
		buf.String())
}

func TestDisplayInfo_SameStructureAcrossKinds(t *testing.T) {
	var lion, elephant bytes.Buffer
	DisplayInfo(&lion, NewLion("Nala", 3, NewDiet("Carnivore"), NewHabitat("Savanna")))
	DisplayInfo(&elephant, NewElephant("Dumbo", 4, NewDiet("Herbivore"), NewHabitat("Circus")))

	labels := func(s string) []string {
		var out []string
		for _, line := range strings.Split(s, "\n") {
			if i := strings.Index(line, ":"); i >= 0 {
				out = append(out, line[:i])
			} else {
				out = append(out, line)
			}
		}
		return out
	}

	assert.Equal(t, labels(lion.String()), labels(elephant.String()))
	assert.Equal(t,
		[]string{"Name", "Age", "Species", "Diet type", "Habitat description", "", ""},
		labels(lion.String()))
	assert.Contains(t, elephant.String(), "Age: 4 years old\n")
}

func TestValuesCopiedIntoAnimal(t *testing.T) {
	diet := NewDiet("Carnivore")
	habitat := NewHabitat("Savanna")
	l := NewLion("Thor", 5, diet, habitat)

	diet = NewDiet("Herbivore")
	habitat = NewHabitat("Forest")

	assert.Equal(t, "Carnivore", l.Diet().Type())
	assert.Equal(t, "Savanna", l.Habitat().Description())
}

func TestEmptyLabelsAreAllowed(t *testing.T) {
	assert.Equal(t, "", NewDiet("").Type())
	assert.Equal(t, "", NewHabitat("").Description())
}

// parrot retiene un recurso y cuenta cuántas veces se liberó.
type parrot struct {
	base
	released *int
}

func (p *parrot) MakeSound(w io.Writer) { fmt.Fprintf(w, "%s SQUAWKS!\n", p.name) }
func (p *parrot) Eat(w io.Writer)       { fmt.Fprintf(w, "%s eats seeds.\n", p.name) }
func (p *parrot) Release()              { *p.released++ }

func TestZooRelease_ExactlyOnce(t *testing.T) {
	counts := make([]int, 3)

	z := NewZoo()
	for i := range counts {
		z.Add(&parrot{
			base:     newBase(fmt.Sprintf("P%d", i), i, "Parrot", NewDiet("Seeds"), NewHabitat("Jungle")),
			released: &counts[i],
		})
	}
	z.Add(NewLion("Thor", 5, NewDiet("Carnivore"), NewHabitat("Savanna")))
	require.Equal(t, 4, z.Len())

	z.Release()
	z.Release()

	assert.Equal(t, []int{1, 1, 1}, counts)
	assert.Equal(t, 0, z.Len())
}

func TestZoo_AnimalsReturnsCopyAndIgnoresNil(t *testing.T) {
	z := CanonicalZoo()
	defer z.Release()

	z.Add(nil)
	require.Equal(t, 4, z.Len())

	got := z.Animals()
	got[0] = nil
	assert.Equal(t, "Thor", z.Animals()[0].Name())
}

func TestZoo_FeedAll(t *testing.T) {
	z := CanonicalZoo()
	defer z.Release()

	var buf bytes.Buffer
	z.FeedAll(&buf)
	assert.Equal(t,
		"Thor eats meat.\nTheo eats meat.\nKibo eats grasses, fruits and roots.\nKali eats grasses, fruits and roots.\n",
		buf.String())
}

func TestNew_Validation(t *testing.T) {
	d, h := NewDiet("Carnivore"), NewHabitat("Savanna")

	a, err := New("  LION ", "Thor", 0, d, h)
	require.NoError(t, err)
	assert.Equal(t, SpeciesLion, a.Species())

	_, err = New(KindLion, " ", 1, d, h)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(KindLion, "Thor", -1, d, h)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(KindLion, "Thor", 1, NewDiet(""), h)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(KindLion, "Thor", 1, d, NewHabitat(""))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = New("dragon", "Smaug", 100, d, h)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegister_ExtendsKinds(t *testing.T) {
	const kindZebra Kind = "zebra-test"
	err := Register(kindZebra, func(name string, age int, diet Diet, habitat Habitat) Animal {
		return &parrot{base: newBase(name, age, "Zebra", diet, habitat), released: new(int)}
	})
	require.NoError(t, err)

	assert.Contains(t, Kinds(), kindZebra)

	a, err := New("Zebra-Test", "Marty", 4, NewDiet("Herbivore"), NewHabitat("Savanna"))
	require.NoError(t, err)
	assert.Equal(t, "Zebra", a.Species())

	var buf bytes.Buffer
	MakeAllAnimalsSound(&buf, []Animal{a, NewLion("Alex", 5, NewDiet("Carnivore"), NewHabitat("Savanna"))})
	assert.Equal(t, "Marty SQUAWKS!\nAlex ROARS!\n", buf.String())

	// kinds vacíos y constructores nil se rechazan
	before := len(Kinds())
	assert.ErrorIs(t, Register(" ", nil), ErrInvalidInput)
	assert.ErrorIs(t, Register("ghost", nil), ErrInvalidInput)
	assert.Len(t, Kinds(), before)
}

func TestRegister_BuiltinKindsAreFixed(t *testing.T) {
	impostor := func(name string, age int, diet Diet, habitat Habitat) Animal {
		return &parrot{base: newBase(name, age, "Parrot", diet, habitat), released: new(int)}
	}

	assert.ErrorIs(t, Register(KindLion, impostor), ErrBuiltinKind)
	assert.ErrorIs(t, Register(" ELEPHANT ", impostor), ErrBuiltinKind)

	a, err := New(KindLion, "Thor", 5, NewDiet("Carnivore"), NewHabitat("Savanna"))
	require.NoError(t, err)
	assert.Equal(t, SpeciesLion, a.Species())

	r := Record{Kind: KindElephant, Name: "Kibo", Age: 8, Species: SpeciesElephant, Diet: "Herbivore", Habitat: "Forest"}
	hydrated, err := r.Animal()
	require.NoError(t, err)
	assert.Equal(t, r.Species, hydrated.Species())
}

func TestNew_NilConstructorResultIsAnError(t *testing.T) {
	const kindGhost Kind = "ghost-nil"
	require.NoError(t, Register(kindGhost, func(string, int, Diet, Habitat) Animal { return nil }))

	a, err := New(kindGhost, "Casper", 1, NewDiet("Ectoplasm"), NewHabitat("Attic"))
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Nil(t, a)
}

func TestNew_AgeUpperBound(t *testing.T) {
	d, h := NewDiet("Herbivore"), NewHabitat("Forest")

	a, err := New(KindElephant, "Old", MaxAge, d, h)
	require.NoError(t, err)
	assert.Equal(t, MaxAge, a.Age())

	over := int64(MaxAge) + 1
	_, err = New(KindElephant, "Older", int(over), d, h)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordAnimal_Hydrates(t *testing.T) {
	r := Record{Kind: KindElephant, Name: "Kibo", Age: 8, Diet: "Herbivore", Habitat: "Forest"}
	a, err := r.Animal()
	require.NoError(t, err)

	var buf bytes.Buffer
	a.MakeSound(&buf)
	assert.Equal(t, "Kibo TRUMPETS!\n", buf.String())
	assert.Equal(t, SpeciesElephant, a.Species())
}
