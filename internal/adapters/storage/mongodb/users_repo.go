package mongodb

import (
	"context"

	"adoptme-api/internal/domain/users"
	"adoptme-api/internal/platform/storeerr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDoc struct {
	ID        primitive.ObjectID   `bson:"_id"`
	FirstName string               `bson:"first_name"`
	LastName  string               `bson:"last_name"`
	Email     string               `bson:"email"`
	Age       float64              `bson:"age"`
	Password  string               `bson:"password"`
	Role      string               `bson:"role"`
	Pets      []primitive.ObjectID `bson:"pets"`
}

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{coll: db.Collection(UsersCollection)}
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateErr(err)
	}

	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return users.User{}, storeerr.ErrNotFound
	}

	var d userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return users.User{}, translateErr(err)
	}
	return d.toDomain(), nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	d, err := fromUser(u)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, d)
	return translateErr(err)
}

// Update hace un único findOneAndUpdate con $set de los campos presentes.
func (r *UsersRepo) Update(ctx context.Context, id string, p users.Patch) (users.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return users.User{}, storeerr.ErrNotFound
	}

	set, err := userSet(p)
	if err != nil {
		return users.User{}, err
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d userDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		return users.User{}, translateErr(err)
	}
	return d.toDomain(), nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) (users.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return users.User{}, storeerr.ErrNotFound
	}

	var d userDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		return users.User{}, translateErr(err)
	}
	return d.toDomain(), nil
}

func userSet(p users.Patch) (bson.D, error) {
	set := bson.D{}
	if p.FirstName != nil {
		set = append(set, bson.E{Key: "first_name", Value: *p.FirstName})
	}
	if p.LastName != nil {
		set = append(set, bson.E{Key: "last_name", Value: *p.LastName})
	}
	if p.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *p.Email})
	}
	if p.Age != nil {
		set = append(set, bson.E{Key: "age", Value: *p.Age})
	}
	if p.Password != nil {
		set = append(set, bson.E{Key: "password", Value: *p.Password})
	}
	if p.Role != nil {
		set = append(set, bson.E{Key: "role", Value: string(*p.Role)})
	}
	if p.Pets != nil {
		refs, err := toObjectIDs(*p.Pets)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "pets", Value: refs})
	}
	return set, nil
}

func fromUser(u users.User) (userDoc, error) {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return userDoc{}, err
	}
	refs, err := toObjectIDs(u.Pets)
	if err != nil {
		return userDoc{}, err
	}
	return userDoc{
		ID:        oid,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
		Password:  u.Password,
		Role:      string(u.Role),
		Pets:      refs,
	}, nil
}

func (d userDoc) toDomain() users.User {
	petIDs := make([]string, 0, len(d.Pets))
	for _, p := range d.Pets {
		petIDs = append(petIDs, p.Hex())
	}
	role := users.Role(d.Role)
	if role == "" {
		role = users.RoleUser
	}
	return users.User{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Age:       d.Age,
		Password:  d.Password,
		Role:      role,
		Pets:      petIDs,
	}
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}
