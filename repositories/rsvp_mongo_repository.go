package repositories

import (
	"context"

	"lcv.link/configs"
	"lcv.link/configs/configslog"
	"lcv.link/models"
	"lcv.link/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const rsvpCollection = "rsvps"

// rsvpDoc Mongo'daki doküman şekli. ObjectID dışarıya hex string olarak açılır.
type rsvpDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	models.RSVP `bson:",inline"`
}

// RSVPMongoRepository IRSVPRepository arayüzünün doküman tabanlı (MongoDB)
// uygulamasıdır.
type RSVPMongoRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewRSVPMongoRepository Mongo bağlantısını açar ve createdAt üzerinde
// azalan sıralama indeksini hazırlar. Tek bir client süreç boyunca paylaşılır.
func NewRSVPMongoRepository(ctx context.Context, cfg configs.StorageConfig) (*RSVPMongoRepository, error) {
	if cfg.MongoURI == "" {
		return nil, apperr.Config("MONGODB_URI not set on server.")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		configslog.Log.Error("Mongo bağlantısı kurulamadı", zap.Error(err))
		return nil, apperr.Storage("could not connect to storage", err)
	}

	coll := client.Database(cfg.MongoDB).Collection(rsvpCollection)

	// createdAt'e göre sıralama için indeks; idempotenttir.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		configslog.Log.Warn("createdAt indeksi oluşturulamadı", zap.Error(err))
	}

	configslog.SLog.Infof("Mongo bağlantısı kuruldu (%s/%s)", cfg.MongoDB, rsvpCollection)
	return &RSVPMongoRepository{client: client, coll: coll}, nil
}

// Insert dokümanı yazar ve ObjectID'yi hex string olarak döner.
func (r *RSVPMongoRepository) Insert(ctx context.Context, rsvp *models.RSVP) (string, error) {
	res, err := r.coll.InsertOne(ctx, rsvpDoc{RSVP: *rsvp})
	if err != nil {
		configslog.Log.Error("RSVP dokümanı yazılamadı", zap.Error(err))
		return "", apperr.Storage("could not save RSVP", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apperr.Storage("could not save RSVP", nil)
	}
	rsvp.ID = oid.Hex()
	return rsvp.ID, nil
}

// List dokümanları createdAt alanına göre en yeniden eskiye döner.
func (r *RSVPMongoRepository) List(ctx context.Context, limit int) ([]models.RSVP, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		configslog.Log.Error("RSVP dokümanları okunamadı", zap.Error(err))
		return nil, apperr.Storage("could not load RSVPs", err)
	}
	defer cur.Close(ctx)

	var docs []rsvpDoc
	if err := cur.All(ctx, &docs); err != nil {
		configslog.Log.Error("RSVP dokümanları çözümlenemedi", zap.Error(err))
		return nil, apperr.Storage("could not load RSVPs", err)
	}

	rsvps := make([]models.RSVP, 0, len(docs))
	for _, d := range docs {
		rsvp := d.RSVP
		rsvp.ID = d.ID.Hex()
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, nil
}

// Ping birincil düğümü yoklar.
func (r *RSVPMongoRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return apperr.Storage("db error", err)
	}
	return nil
}

// Close client bağlantısını keser.
func (r *RSVPMongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

var _ IRSVPRepository = (*RSVPMongoRepository)(nil)
