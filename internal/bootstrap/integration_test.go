package bootstrap

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
)

const integrationURIEnv = "ANIMALSYS_TEST_MONGO_URI"

// TestMain starts a MongoDB container for the integration tests when
// GO_TEST_INTEGRATION is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}
	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}
	_ = os.Setenv(integrationURIEnv, fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

func TestIntegration_Bootstrap(t *testing.T) {
	uri := os.Getenv(integrationURIEnv)
	if uri == "" {
		t.Skip("set GO_TEST_INTEGRATION to run against a MongoDB container")
	}

	ctx, cancel := context.WithTimeout(t.Context(), 30*time.Second)
	defer cancel()

	cfg := &Config{MongoURI: uri, Database: "animalsys_" + uuid.NewString()[:8], Timeout: 10 * time.Second}
	cli, err := Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cli.Disconnect(context.Background()) })

	db := cli.Database(cfg.Database)
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	b := New(NewMongoStore(db), nil)

	rep, err := b.Run(ctx, "", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, Collections, rep.CreatedCollections)

	names, err := db.ListCollectionNames(ctx, bson.D{})
	require.NoError(t, err)
	assert.Subset(t, names, Collections)

	rep, err = b.Run(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, rep.CreatedCollections)

	users := db.Collection("users")
	_, err = users.InsertOne(ctx, bson.D{{Key: "email", Value: "a@shelter.test"}, {Key: "username", Value: "a"}})
	require.NoError(t, err)
	_, err = users.InsertOne(ctx, bson.D{{Key: "email", Value: "a@shelter.test"}, {Key: "username", Value: "b"}})
	require.Error(t, err, "email must be unique")
}
