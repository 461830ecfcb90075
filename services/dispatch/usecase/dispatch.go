package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/gceits/campusfleet/services/dispatch"
	"github.com/google/uuid"
)

type dispatchUC struct {
	cfg           *models.Config
	bookingRepo   dispatch.BookingRepo
	dispatchGW    dispatch.DispatchGW
	fleetProvider dispatch.FleetProvider

	// otpGen is swapped out in tests for a deterministic code
	otpGen func() (string, error)
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	bookingRepo dispatch.BookingRepo,
	dispatchGW dispatch.DispatchGW,
	fleetProvider dispatch.FleetProvider,
) (dispatch.DispatchUC, error) {
	otpLength := cfg.Dispatch.OTPLength
	if otpLength <= 0 {
		otpLength = 6
	}

	return &dispatchUC{
		cfg:           cfg,
		bookingRepo:   bookingRepo,
		dispatchGW:    dispatchGW,
		fleetProvider: fleetProvider,
		otpGen: func() (string, error) {
			return utils.GenerateOTP(otpLength)
		},
	}, nil
}

// CreateBooking opens a new ambulance booking in the pending state
func (uc *dispatchUC) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if !utils.IsValidPhoneNumber(req.Phone) {
		return nil, apperrors.ErrInvalidPhone
	}
	if req.StudentRegistrationID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "MISSING_REGISTRATION_ID", "student registration ID is required")
	}
	if err := validatePlace(req.Place, req.PlaceDetails); err != nil {
		return nil, err
	}
	if req.UserLatitude < -90 || req.UserLatitude > 90 || req.UserLongitude < -180 || req.UserLongitude > 180 {
		return nil, apperrors.ErrInvalidLocation
	}

	booking := &models.Booking{
		StudentRegistrationID: req.StudentRegistrationID,
		Phone:                 req.Phone,
		Place:                 req.Place,
		PlaceDetails:          req.PlaceDetails,
		UserLatitude:          req.UserLatitude,
		UserLongitude:         req.UserLongitude,
		Status:                models.BookingStatusPending,
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Ambulance booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("registration_id", booking.StudentRegistrationID),
		logger.String("phone", utils.MaskPhoneNumber(booking.Phone)))

	uc.publishEvent(ctx, models.BookingEventCreated, booking)

	return booking, nil
}

func validatePlace(place, details string) error {
	if place == models.PlaceOther {
		if details == "" {
			return apperrors.New(apperrors.KindValidation, "MISSING_PLACE_DETAILS", "place details are required for other")
		}
		return nil
	}
	if _, ok := models.PlaceNames[place]; !ok {
		return apperrors.ErrInvalidLocation
	}
	return nil
}

// GetBooking retrieves a booking by ID
func (uc *dispatchUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, id)
}

// ListPendingBookings retrieves bookings awaiting a driver
func (uc *dispatchUC) ListPendingBookings(ctx context.Context) ([]models.Booking, error) {
	return uc.bookingRepo.ListByStatus(ctx, models.BookingStatusPending)
}

// ListBookingsByPhone retrieves the booking history for a phone number
func (uc *dispatchUC) ListBookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	if !utils.IsValidPhoneNumber(phone) {
		return nil, apperrors.ErrInvalidPhone
	}
	return uc.bookingRepo.ListByPhone(ctx, phone)
}

// AcceptBooking claims a pending booking for an ambulance driver. Of
// concurrent accepts on the same booking exactly one wins; the booking
// gains the driver, vehicle, a pickup OTP and an initial ETA.
func (uc *dispatchUC) AcceptBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	vehicle, err := uc.fleetProvider.GetDriverVehicle(ctx, driverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAssignment) {
			return nil, apperrors.ErrNoAmbulanceAssigned
		}
		return nil, err
	}
	if vehicle.Type != models.VehicleTypeAmbulance {
		return nil, apperrors.ErrNoAmbulanceAssigned
	}
	if vehicle.OutOfStation {
		return nil, apperrors.ErrVehicleOutOfStation
	}

	otp, err := uc.otpGen()
	if err != nil {
		return nil, err
	}

	target, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	eta := uc.estimateETA(ctx, vehicle.ID, target.UserLatitude, target.UserLongitude)

	booking, err := uc.bookingRepo.AcceptBooking(ctx, bookingID, driverID, vehicle.ID, vehicle.VehicleNumber, otp, eta)
	if err != nil {
		return nil, err
	}

	if err := uc.dispatchGW.CacheActiveBooking(ctx, vehicle.ID, booking.ID); err != nil {
		logger.Warn("Failed to cache active booking",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}

	logger.Info("Booking accepted",
		logger.String("booking_id", booking.ID.String()),
		logger.String("driver_id", driverID.String()),
		logger.String("vehicle_number", vehicle.VehicleNumber))

	uc.publishEvent(ctx, models.BookingEventAccepted, booking)

	return booking, nil
}

// estimateETA computes the rider-facing arrival estimate from the
// ambulance's last known position. No position means no estimate yet.
func (uc *dispatchUC) estimateETA(ctx context.Context, vehicleID uuid.UUID, lat, lng float64) *int {
	location, err := uc.fleetProvider.GetVehicleLocation(ctx, vehicleID)
	if err != nil {
		return nil
	}

	distance := utils.CalculateDistance(
		utils.GeoPoint{Latitude: location.Latitude, Longitude: location.Longitude},
		utils.GeoPoint{Latitude: lat, Longitude: lng},
	)
	eta := utils.ETAMinutes(distance, uc.cfg.Dispatch.AverageSpeedKmh)
	if eta <= 0 {
		return nil
	}
	return &eta
}

// VerifyOTP confirms the pickup. Only the driver holding the booking may
// verify, and a wrong code leaves the booking untouched.
func (uc *dispatchUC) VerifyOTP(ctx context.Context, bookingID, driverID uuid.UUID, otp string) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusAccepted {
		return nil, apperrors.ErrBookingNotAccepted
	}
	if booking.DriverID == nil || *booking.DriverID != driverID {
		return nil, apperrors.ErrDriverMismatch
	}
	if booking.OTP != otp {
		return nil, apperrors.ErrInvalidOTP
	}

	updated, err := uc.bookingRepo.TransitionStatus(ctx, bookingID, models.BookingStatusAccepted, models.BookingStatusInProgress)
	if err != nil {
		return nil, err
	}

	logger.Info("Pickup confirmed",
		logger.String("booking_id", bookingID.String()),
		logger.String("driver_id", driverID.String()))

	return updated, nil
}

// AbortBooking cancels an accepted or in-progress booking. The record is
// kept as history; the ambulance becomes claimable again.
func (uc *dispatchUC) AbortBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusAccepted && booking.Status != models.BookingStatusInProgress {
		return nil, apperrors.ErrBookingNotAccepted
	}
	if booking.DriverID == nil || *booking.DriverID != driverID {
		return nil, apperrors.ErrDriverMismatch
	}

	updated, err := uc.bookingRepo.TransitionStatus(ctx, bookingID, booking.Status, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	uc.releaseVehicle(ctx, booking)

	logger.Info("Booking aborted",
		logger.String("booking_id", bookingID.String()),
		logger.String("driver_id", driverID.String()))

	uc.publishEvent(ctx, models.BookingEventCancelled, updated)

	return updated, nil
}

// CompleteBooking closes an in-progress booking after drop-off
func (uc *dispatchUC) CompleteBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusInProgress {
		return nil, apperrors.ErrBookingNotInProgress
	}
	if booking.DriverID == nil || *booking.DriverID != driverID {
		return nil, apperrors.ErrDriverMismatch
	}

	updated, err := uc.bookingRepo.TransitionStatus(ctx, bookingID, models.BookingStatusInProgress, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}

	uc.releaseVehicle(ctx, booking)

	logger.Info("Booking completed",
		logger.String("booking_id", bookingID.String()),
		logger.String("driver_id", driverID.String()))

	uc.publishEvent(ctx, models.BookingEventCompleted, updated)

	return updated, nil
}

func (uc *dispatchUC) releaseVehicle(ctx context.Context, booking *models.Booking) {
	if booking.VehicleID == nil {
		return
	}
	if err := uc.dispatchGW.ClearActiveBooking(ctx, *booking.VehicleID); err != nil {
		logger.Warn("Failed to clear active booking cache",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}
}

// RefreshETA recomputes the rider-facing ETA from a fresh ambulance
// position
func (uc *dispatchUC) RefreshETA(ctx context.Context, vehicleID uuid.UUID, location models.Location) error {
	booking, err := uc.GetActiveBookingByVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil
		}
		return err
	}

	distance := utils.CalculateDistance(
		utils.GeoPoint{Latitude: location.Latitude, Longitude: location.Longitude},
		utils.GeoPoint{Latitude: booking.UserLatitude, Longitude: booking.UserLongitude},
	)
	eta := utils.ETAMinutes(distance, uc.cfg.Dispatch.AverageSpeedKmh)
	if eta <= 0 {
		return nil
	}

	if err := uc.bookingRepo.UpdateETA(ctx, booking.ID, eta); err != nil {
		return err
	}

	booking.ETAMinutes = &eta
	uc.publishEvent(ctx, models.BookingEventETAUpdate, booking)

	return nil
}

// GetActiveBookingByVehicle retrieves the booking an ambulance is
// serving, preferring the cache over the store
func (uc *dispatchUC) GetActiveBookingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Booking, error) {
	if bookingID, err := uc.dispatchGW.GetActiveBookingID(ctx, vehicleID); err == nil {
		booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
		if err == nil && !booking.Status.Terminal() {
			return booking, nil
		}
		// stale cache entry, fall through to the store
		uc.releaseVehicle(ctx, &models.Booking{ID: bookingID, VehicleID: &vehicleID})
	}

	return uc.bookingRepo.GetActiveBookingByVehicle(ctx, vehicleID)
}

func (uc *dispatchUC) publishEvent(ctx context.Context, eventType string, booking *models.Booking) {
	event := models.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		Booking:   booking,
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.PublishBookingEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", booking.ID.String()),
			logger.String("event_type", eventType),
			logger.Err(err))
	}
}
