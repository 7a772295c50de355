package mongodb

import (
	"context"

	"adoptme-api/internal/domain/pets"
	"adoptme-api/internal/platform/storeerr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type petDoc struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Name      string              `bson:"name"`
	Species   string              `bson:"species"`
	BirthDate *birthDate          `bson:"birthDate,omitempty"`
	Adopted   bool                `bson:"adopted"`
	Owner     *primitive.ObjectID `bson:"owner,omitempty"`
}

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(PetsCollection)}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer cur.Close(ctx)

	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateErr(err)
	}

	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, storeerr.ErrNotFound
	}

	var d petDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return pets.Pet{}, translateErr(err)
	}
	return d.toDomain(), nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	d, err := fromPet(p)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, d)
	return translateErr(err)
}

func (r *PetsRepo) Update(ctx context.Context, id string, p pets.Patch) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, storeerr.ErrNotFound
	}

	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Species != nil {
		set = append(set, bson.E{Key: "species", Value: *p.Species})
	}
	if p.BirthDate != nil {
		set = append(set, bson.E{Key: "birthDate", Value: *p.BirthDate})
	}
	if p.Adopted != nil {
		set = append(set, bson.E{Key: "adopted", Value: *p.Adopted})
	}
	unset := bson.D{}
	if p.Owner != nil {
		if *p.Owner == "" {
			unset = append(unset, bson.E{Key: "owner", Value: ""})
		} else {
			owner, err := primitive.ObjectIDFromHex(*p.Owner)
			if err != nil {
				return pets.Pet{}, err
			}
			set = append(set, bson.E{Key: "owner", Value: owner})
		}
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}
	if len(update) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d petDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&d); err != nil {
		return pets.Pet{}, translateErr(err)
	}
	return d.toDomain(), nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, storeerr.ErrNotFound
	}

	var d petDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return pets.Pet{}, translateErr(err)
	}
	return d.toDomain(), nil
}

func fromPet(p pets.Pet) (petDoc, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return petDoc{}, err
	}
	d := petDoc{
		ID:      oid,
		Name:    p.Name,
		Species: p.Species,
		Adopted: p.Adopted,
	}
	if p.BirthDate != nil {
		d.BirthDate = &birthDate{Time: p.BirthDate.UTC()}
	}
	if p.Owner != "" {
		owner, err := primitive.ObjectIDFromHex(p.Owner)
		if err != nil {
			return petDoc{}, err
		}
		d.Owner = &owner
	}
	return d, nil
}

func (d petDoc) toDomain() pets.Pet {
	p := pets.Pet{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Species: d.Species,
		Adopted: d.Adopted,
	}
	if d.BirthDate != nil && !d.BirthDate.IsZero() {
		t := d.BirthDate.UTC()
		p.BirthDate = &t
	}
	if d.Owner != nil {
		p.Owner = d.Owner.Hex()
	}
	return p
}
