package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/constants"
	"github.com/gceits/campusfleet/internal/pkg/database"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Live positions go stale quickly; expire them rather than serving
// hours-old fixes.
const locationTTL = 5 * time.Minute

type LocationRepo struct {
	redisClient *database.RedisClient
}

func NewLocationRepository(redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		redisClient: redisClient,
	}
}

// StoreLocation writes the latest position for a vehicle to the hash key
// and refreshes its entry in the geo index
func (r *LocationRepo) StoreLocation(ctx context.Context, vehicleID uuid.UUID, location models.Location) error {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID.String())

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldSpeed:     strconv.FormatFloat(location.Speed, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodeLocation(location, 9),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store vehicle location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, locationTTL); err != nil {
		return fmt.Errorf("failed to expire vehicle location: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, location.Longitude, location.Latitude, vehicleID.String()); err != nil {
		return fmt.Errorf("failed to index vehicle location: %w", err)
	}

	return nil
}

// GetLocation retrieves the latest known position for a vehicle
func (r *LocationRepo) GetLocation(ctx context.Context, vehicleID uuid.UUID) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID.String())

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle location: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrVehicleNotFound
	}

	location := &models.Location{Geohash: fields[constants.FieldGeohash]}
	if location.Latitude, err = strconv.ParseFloat(fields[constants.FieldLatitude], 64); err != nil {
		return nil, fmt.Errorf("failed to parse latitude: %w", err)
	}
	if location.Longitude, err = strconv.ParseFloat(fields[constants.FieldLongitude], 64); err != nil {
		return nil, fmt.Errorf("failed to parse longitude: %w", err)
	}
	if location.Speed, err = strconv.ParseFloat(fields[constants.FieldSpeed], 64); err != nil {
		return nil, fmt.Errorf("failed to parse speed: %w", err)
	}
	ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	location.Timestamp = time.Unix(ts, 0)

	return location, nil
}

// RemoveLocation drops the vehicle from the live position store
func (r *LocationRepo) RemoveLocation(ctx context.Context, vehicleID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID.String())

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete vehicle location: %w", err)
	}
	if err := r.redisClient.GeoRemove(ctx, constants.KeyVehicleGeo, vehicleID.String()); err != nil {
		return fmt.Errorf("failed to deindex vehicle location: %w", err)
	}

	return nil
}
