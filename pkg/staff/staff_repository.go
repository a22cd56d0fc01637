package staff

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RepositoryInterface is the storage of staff records. Every write is a single conditional update of one document.
type RepositoryInterface interface {
	Add(ctx context.Context, record *StaffRecord) error
	FindByUserID(ctx context.Context, userID string, fields ...string) (*StaffRecord, error)
	UpdateAvailability(ctx context.Context, userID string, availability Availability) error
	AddTask(ctx context.Context, userID string, task *Task) error
	CompleteTask(ctx context.Context, userID string, taskID string, completedAt time.Time) (*Task, error)
	AddAttendance(ctx context.Context, userID string, record *AttendanceRecord, dayStart time.Time, dayEnd time.Time) error
	AddLeaveRequest(ctx context.Context, userID string, request *LeaveRequest) error
	DeletePendingLeaveRequest(ctx context.Context, userID string, requestID string) error
}

// MongoDBStaffRepository stores staff records with embedded tasks, leave requests and attendance
type MongoDBStaffRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// EnsureIndexes creates the indexes the repository relies on
func (s *MongoDBStaffRepository) EnsureIndexes(ctx context.Context) error {
	_, err := s.DB.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "create staff indexes")
}

// Add adds a staff record
func (s *MongoDBStaffRepository) Add(ctx context.Context, record *StaffRecord) error {
	record.prepare(time.Now())

	_, err := s.DB.InsertOne(ctx, record)
	return errors.Wrap(err, "insert staff record")
}

// FindByUserID finds the staff record of a user, optionally only loading fields
func (s *MongoDBStaffRepository) FindByUserID(ctx context.Context, userID string, fields ...string) (*StaffRecord, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	findOptions := options.FindOne()
	if len(fields) > 0 {
		projection := bson.M{"userId": 1}
		for _, field := range fields {
			projection[field] = 1
		}
		findOptions.SetProjection(projection)
	}

	record := StaffRecord{}
	err = s.DB.FindOne(ctx, bson.M{"userId": userObjectID}, findOptions).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find staff record")
	}

	return &record, nil
}

// UpdateAvailability sets the availability flag
func (s *MongoDBStaffRepository) UpdateAvailability(ctx context.Context, userID string, availability Availability) error {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrStaffNotFound
	}

	result, err := s.DB.UpdateOne(ctx, bson.M{"userId": userObjectID}, bson.M{
		"$set": bson.M{"availability": availability, "updatedAt": time.Now()},
	})
	if err != nil {
		return errors.Wrap(err, "update availability")
	}

	if result.MatchedCount != 1 {
		return ErrStaffNotFound
	}

	return nil
}

// AddTask appends a task
func (s *MongoDBStaffRepository) AddTask(ctx context.Context, userID string, task *Task) error {
	task.prepare()
	return s.push(ctx, userID, "tasks", task)
}

// CompleteTask sets status, completion date and completer of a task in one update and returns the task
func (s *MongoDBStaffRepository) CompleteTask(ctx context.Context, userID string, taskID string, completedAt time.Time) (*Task, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	taskObjectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, s.missing(ctx, userObjectID, ErrTaskNotFound)
	}

	updateOptions := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"tasks": bson.M{"$elemMatch": bson.M{"_id": taskObjectID}}})

	record := StaffRecord{}
	err = s.DB.FindOneAndUpdate(ctx, bson.M{
		"userId":    userObjectID,
		"tasks._id": taskObjectID,
	}, bson.M{
		"$set": bson.M{
			"tasks.$.status":        TaskStatusCompleted,
			"tasks.$.completedDate": completedAt,
			"tasks.$.completedBy":   userObjectID,
			"updatedAt":             time.Now(),
		},
	}, updateOptions).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, s.missing(ctx, userObjectID, ErrTaskNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "complete task")
	}

	if len(record.Tasks) != 1 {
		return nil, ErrTaskNotFound
	}

	return &record.Tasks[0], nil
}

// AddAttendance appends record unless an attendance record already falls into [dayStart, dayEnd)
func (s *MongoDBStaffRepository) AddAttendance(ctx context.Context, userID string, record *AttendanceRecord, dayStart time.Time, dayEnd time.Time) error {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrStaffNotFound
	}

	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}

	result, err := s.DB.UpdateOne(ctx, bson.M{
		"userId": userObjectID,
		"attendance": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"date": bson.M{"$gte": dayStart, "$lt": dayEnd},
		}}},
	}, bson.M{
		"$push": bson.M{"attendance": record},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return errors.Wrap(err, "add attendance")
	}

	if result.MatchedCount == 0 {
		return s.missing(ctx, userObjectID, ErrAttendanceAlreadyMarked)
	}

	return nil
}

// AddLeaveRequest appends a leave request
func (s *MongoDBStaffRepository) AddLeaveRequest(ctx context.Context, userID string, request *LeaveRequest) error {
	request.prepare()
	return s.push(ctx, userID, "leaveRequests", request)
}

// DeletePendingLeaveRequest removes a leave request only while it is pending
func (s *MongoDBStaffRepository) DeletePendingLeaveRequest(ctx context.Context, userID string, requestID string) error {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrStaffNotFound
	}

	requestObjectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return s.missing(ctx, userObjectID, ErrLeaveRequestNotFound)
	}

	result, err := s.DB.UpdateOne(ctx, bson.M{
		"userId": userObjectID,
		"leaveRequests": bson.M{"$elemMatch": bson.M{
			"_id":    requestObjectID,
			"status": bson.M{"$in": bson.A{LeaveStatusPending, "", nil}},
		}},
	}, bson.M{
		"$pull": bson.M{"leaveRequests": bson.M{"_id": requestObjectID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return errors.Wrap(err, "delete leave request")
	}

	if result.MatchedCount == 1 {
		return nil
	}

	count, err := s.DB.CountDocuments(ctx, bson.M{"userId": userObjectID, "leaveRequests._id": requestObjectID})
	if err != nil {
		return errors.Wrap(err, "count leave requests")
	}
	if count > 0 {
		return ErrLeaveRequestNotPending
	}

	return s.missing(ctx, userObjectID, ErrLeaveRequestNotFound)
}

func (s *MongoDBStaffRepository) push(ctx context.Context, userID string, field string, value interface{}) error {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrStaffNotFound
	}

	result, err := s.DB.UpdateOne(ctx, bson.M{"userId": userObjectID}, bson.M{
		"$push": bson.M{field: value},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return errors.Wrap(err, "push "+field)
	}

	if result.MatchedCount != 1 {
		return ErrStaffNotFound
	}

	return nil
}

// missing returns ErrStaffNotFound when the record itself is absent and otherwise errIfPresent
func (s *MongoDBStaffRepository) missing(ctx context.Context, userObjectID primitive.ObjectID, errIfPresent error) error {
	count, err := s.DB.CountDocuments(ctx, bson.M{"userId": userObjectID})
	if err != nil {
		return errors.Wrap(err, "count staff records")
	}

	if count == 0 {
		return ErrStaffNotFound
	}

	return errIfPresent
}
