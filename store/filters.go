package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobbox/models"
)

// threadFilter is the name bound by the $[user] positional operator.
const threadFilter = "user"

func byID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

func byEmail(email string) bson.M {
	return bson.M{"email": email}
}

func byEmployer(employerID primitive.ObjectID) bson.M {
	return bson.M{"employerInfo.id": employerID.Hex()}
}

func byApplicantEmail(email string) bson.M {
	return bson.M{"applicants": bson.M{"$elemMatch": bson.M{"email": email}}}
}

func byThreadSender(senderID primitive.ObjectID) bson.M {
	return bson.M{"queries.id": senderID}
}

func push(field string, value interface{}) bson.M {
	return bson.M{"$push": bson.M{field: value}}
}

func closeJob() bson.M {
	return bson.M{"$set": bson.M{"jobStatus": models.JobStatusClosed}}
}

// pushThreadReply appends reply to every queries element whose id matches,
// within the single document selected by byThreadSender.
func pushThreadReply(senderID primitive.ObjectID, reply string) (bson.M, *options.UpdateOptions) {
	update := push("queries.$["+threadFilter+"].reply", reply)
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{threadFilter + ".id": senderID}},
	})
	return update, opts
}

func appliedJobsOptions(order models.SortOrder) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "applicants.createdAt", Value: int(order)}}).
		SetProjection(bson.M{"applicants": 0})
}
