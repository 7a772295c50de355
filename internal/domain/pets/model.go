package pets

import "time"

// Pet es el documento de mascota. Owner es una referencia opcional a un usuario;
// no se verifica que exista.
type Pet struct {
	ID string

	Name    string
	Species string

	BirthDate *time.Time
	Adopted   bool
	Owner     string
}

// Patch lleva solo los campos enviados en un PUT; nil = no tocar.
type Patch struct {
	Name      *string
	Species   *string
	BirthDate *time.Time
	Adopted   *bool
	Owner     *string // "" = quitar dueño
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Species == nil && p.BirthDate == nil && p.Adopted == nil && p.Owner == nil
}

func (p Patch) Apply(pet Pet) Pet {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Species != nil {
		pet.Species = *p.Species
	}
	if p.BirthDate != nil {
		t := *p.BirthDate
		pet.BirthDate = &t
	}
	if p.Adopted != nil {
		pet.Adopted = *p.Adopted
	}
	if p.Owner != nil {
		pet.Owner = *p.Owner
	}
	return pet
}
