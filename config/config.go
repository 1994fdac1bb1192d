package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	Port                 string
	MongoURL             string
	DBName               string
	ContactsCollection   string
	PropertiesCollection string
}

func Load() *Config {
	return &Config{
		Port:                 getenv("PORT", "8080"),
		MongoURL:             getenv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:               getenv("DB_NAME", "velan_properties"),
		ContactsCollection:   getenv("MONGODB_COLLECTION_CONTACTS", "contacts"),
		PropertiesCollection: getenv("MONGODB_COLLECTION_PROPERTIES", "properties"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var (
	client   *mongo.Client
	database *mongo.Database
)

// ConnectDB opens the shared MongoDB handle. One client serves all requests;
// the driver is safe for concurrent use.
func ConnectDB(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return err
	}
	if err := cl.Ping(ctx, nil); err != nil {
		return err
	}

	client = cl
	database = cl.Database(cfg.DBName)
	return nil
}

func GetCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

func DisconnectDB() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
