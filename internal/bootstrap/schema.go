package bootstrap

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections are the collections the backend reads and writes.
var Collections = []string{
	"users",
	"animals",
	"adoptions",
	"schedules",
	"documents",
	"finances",
	"donors",
	"volunteers",
	"inventory",
	"veterinary_visits",
}

// IndexSpec is one index on one collection.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
	Unique     bool
}

func (s IndexSpec) model() mongo.IndexModel {
	opts := options.Index().SetName(s.Name)
	if s.Unique {
		opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: s.Keys, Options: opts}
}

var Indexes = []IndexSpec{
	{Collection: "users", Name: "uniq_email", Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
	{Collection: "users", Name: "uniq_username", Keys: bson.D{{Key: "username", Value: 1}}, Unique: true},
	{Collection: "animals", Name: "status", Keys: bson.D{{Key: "status", Value: 1}}},
	{Collection: "animals", Name: "species", Keys: bson.D{{Key: "species", Value: 1}}},
	{Collection: "adoptions", Name: "animal_id", Keys: bson.D{{Key: "animal_id", Value: 1}}},
	{Collection: "adoptions", Name: "user_id", Keys: bson.D{{Key: "user_id", Value: 1}}},
	{Collection: "adoptions", Name: "status", Keys: bson.D{{Key: "status", Value: 1}}},
	{Collection: "schedules", Name: "employee_shift", Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "shift_date", Value: 1}}},
	{Collection: "documents", Name: "uploaded_by", Keys: bson.D{{Key: "uploaded_by", Value: 1}}},
	{Collection: "finances", Name: "date", Keys: bson.D{{Key: "date", Value: -1}}},
}

// indexesByCollection groups specs by collection, keeping their order.
func indexesByCollection(specs []IndexSpec) (order []string, models map[string][]mongo.IndexModel) {
	models = make(map[string][]mongo.IndexModel)
	for _, s := range specs {
		if _, ok := models[s.Collection]; !ok {
			order = append(order, s.Collection)
		}
		models[s.Collection] = append(models[s.Collection], s.model())
	}
	return order, models
}
