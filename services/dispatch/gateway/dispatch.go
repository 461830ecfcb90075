package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/constants"
	"github.com/gceits/campusfleet/internal/pkg/database"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/pkg/nsq"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Accepted bookings rarely outlive a shift; the cache entry is a fast
// path, the store stays authoritative.
const activeBookingTTL = 12 * time.Hour

type DispatchGW struct {
	producer    *nsq.Producer
	redisClient *database.RedisClient
}

func NewDispatchGW(producer *nsq.Producer, redisClient *database.RedisClient) *DispatchGW {
	return &DispatchGW{
		producer:    producer,
		redisClient: redisClient,
	}
}

// PublishBookingEvent broadcasts a booking lifecycle transition
func (g *DispatchGW) PublishBookingEvent(ctx context.Context, event models.BookingEvent) error {
	if err := g.producer.Publish(constants.TopicBookingEvents, event); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}

// CacheActiveBooking records which booking the vehicle is serving
func (g *DispatchGW) CacheActiveBooking(ctx context.Context, vehicleID, bookingID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyActiveBooking, vehicleID.String())
	if err := g.redisClient.Set(ctx, key, bookingID.String(), activeBookingTTL); err != nil {
		return fmt.Errorf("failed to cache active booking: %w", err)
	}
	return nil
}

// GetActiveBookingID retrieves the cached booking for a vehicle
func (g *DispatchGW) GetActiveBookingID(ctx context.Context, vehicleID uuid.UUID) (uuid.UUID, error) {
	key := fmt.Sprintf(constants.KeyActiveBooking, vehicleID.String())

	value, err := g.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, apperrors.ErrBookingNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get active booking: %w", err)
	}

	bookingID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse cached booking ID: %w", err)
	}

	return bookingID, nil
}

// ClearActiveBooking drops the cache entry for a vehicle
func (g *DispatchGW) ClearActiveBooking(ctx context.Context, vehicleID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyActiveBooking, vehicleID.String())
	if err := g.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear active booking: %w", err)
	}
	return nil
}
