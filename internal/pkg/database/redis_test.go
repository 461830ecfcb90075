package database

import (
	"context"
	"testing"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	ctx := context.Background()
	key := "booking:active:vehicle-1"
	value := "booking-42"

	mock.ExpectSet(key, value, time.Hour).SetVal("OK")
	mock.ExpectGet(key).SetVal(value)
	mock.ExpectDel(key).SetVal(1)

	require.NoError(t, client.Set(ctx, key, value, time.Hour))

	got, err := client.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	require.NoError(t, client.Delete(ctx, key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get_Missing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectGet("vehicle:location:missing").RedisNil()

	_, err := client.Get(context.Background(), "vehicle:location:missing")
	assert.Error(t, err)
	assert.Equal(t, redis.Nil, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HashOperations(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	ctx := context.Background()
	key := "vehicle:location:vehicle-1"
	fields := map[string]interface{}{
		"latitude":  "-6.175392",
		"longitude": "106.827153",
		"speed":     "32.5",
	}

	mock.ExpectHSet(key, fields).SetVal(3)
	mock.ExpectExpire(key, 30*time.Minute).SetVal(true)
	mock.ExpectHGetAll(key).SetVal(map[string]string{
		"latitude":  "-6.175392",
		"longitude": "106.827153",
		"speed":     "32.5",
	})

	require.NoError(t, client.HMSet(ctx, key, fields))
	require.NoError(t, client.Expire(ctx, key, 30*time.Minute))

	got, err := client.HGetAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "32.5", got["speed"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoOperations(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	ctx := context.Background()
	key := "vehicles:geo"
	longitude := 106.827153
	latitude := -6.175392
	member := "vehicle-1"

	mock.ExpectGeoAdd(key, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      member,
	}).SetVal(1)

	mock.ExpectGeoRadius(key, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    5.0,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).SetVal([]redis.GeoLocation{
		{Name: member, Longitude: longitude, Latitude: latitude, Dist: 0},
	})

	mock.ExpectZRem(key, member).SetVal(1)

	require.NoError(t, client.GeoAdd(ctx, key, longitude, latitude, member))

	nearby, err := client.GeoRadius(ctx, key, longitude, latitude, 5.0, "km")
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, member, nearby[0].Name)

	require.NoError(t, client.GeoRemove(ctx, key, member))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetClient(t *testing.T) {
	db, _ := redismock.NewClientMock()
	client := &RedisClient{client: db}

	assert.Equal(t, db, client.GetClient())
}
