package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"riichiscore/internal/config"
	"riichiscore/internal/mahjong"
)

// ErrPresetNotFound is returned by RulesetStore.Find when no preset is
// stored under the given name.
var ErrPresetNotFound = errors.New("ruleset preset not found")

// MongoManager owns the driver client and database handle, mirroring
// common/database/mongo.go's MongoManager.
type MongoManager struct {
	Cli *mongo.Client
	Db  *mongo.Database
}

// NewMongo connects to MongoDB per cfg and verifies the connection with a
// Ping against the primary.
func NewMongo(cfg config.MongoConf) (*MongoManager, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return &MongoManager{Cli: client, Db: client.Database(cfg.Database)}, nil
}

// Close disconnects the underlying client.
func (m *MongoManager) Close() error {
	if m == nil {
		return nil
	}
	return m.Cli.Disconnect(context.TODO())
}

// RulesetStore persists named RuleSet presets, matching the
// core/domain/repository Mongo-backed repository pattern.
type RulesetStore struct {
	mongo *MongoManager
}

// NewRulesetStore wraps mongo for ruleset-preset persistence.
func NewRulesetStore(mongo *MongoManager) *RulesetStore {
	return &RulesetStore{mongo: mongo}
}

type rulesetDoc struct {
	Name  string          `bson:"_id"`
	Rules mahjong.RuleSet `bson:"rules"`
}

// Save upserts a named preset.
func (r *RulesetStore) Save(ctx context.Context, name string, rules mahjong.RuleSet) error {
	collection := r.mongo.Db.Collection("rulesets")
	_, err := collection.ReplaceOne(ctx,
		bson.M{"_id": name},
		rulesetDoc{Name: name, Rules: rules},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Find looks up a named preset.
func (r *RulesetStore) Find(ctx context.Context, name string) (mahjong.RuleSet, error) {
	collection := r.mongo.Db.Collection("rulesets")
	var doc rulesetDoc
	if err := collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return mahjong.RuleSet{}, ErrPresetNotFound
		}
		return mahjong.RuleSet{}, err
	}
	return doc.Rules, nil
}

// HistoryStore logs every scored hand for later audit, matching the
// GameRecord/RoundRecord persistence pattern.
type HistoryStore struct {
	mongo *MongoManager
}

// NewHistoryStore wraps mongo for scored-hand history persistence.
func NewHistoryStore(mongo *MongoManager) *HistoryStore {
	return &HistoryStore{mongo: mongo}
}

// ScoredHand is one logged scoring call.
type ScoredHand struct {
	ClientID string               `bson:"client_id"`
	Hand     mahjong.HandInput    `bson:"hand"`
	Context  mahjong.ContextInput `bson:"context"`
	Rules    mahjong.RuleSet      `bson:"rules"`
	Result   *mahjong.ScoreResult `bson:"result"`
	ScoredAt time.Time            `bson:"scored_at"`
}

// Log records a completed scoring call.
func (h *HistoryStore) Log(ctx context.Context, rec ScoredHand) error {
	collection := h.mongo.Db.Collection("scored_hands")
	_, err := collection.InsertOne(ctx, rec)
	return err
}

// FeedbackStore archives client feedback on a previously returned
// result, matching the original's GCSFeedbackStore but landing in
// Mongo since neither a GCS nor S3 client is in the teacher's stack.
type FeedbackStore struct {
	mongo *MongoManager
}

// NewFeedbackStore wraps mongo for feedback archiving.
func NewFeedbackStore(mongo *MongoManager) *FeedbackStore {
	return &FeedbackStore{mongo: mongo}
}

// Feedback is one archived feedback submission.
type Feedback struct {
	ResultID    string    `bson:"result_id"`
	ClientID    string    `bson:"client_id"`
	Comment     string    `bson:"comment"`
	SubmittedAt time.Time `bson:"submitted_at"`
}

// Save archives a feedback submission.
func (f *FeedbackStore) Save(ctx context.Context, fb Feedback) error {
	collection := f.mongo.Db.Collection("score_feedback")
	_, err := collection.InsertOne(ctx, fb)
	return err
}
