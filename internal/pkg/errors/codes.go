package errors

import "net/http"

var (
	ErrDistrictNotFound = New(
		"DISTRICT_NOT_FOUND",
		"District not found in demographic data",
		http.StatusNotFound,
	)

	ErrDistrictRequired = New(
		"DISTRICT_REQUIRED",
		"District parameter is required",
		http.StatusBadRequest,
	)

	ErrDatasetUnavailable = New(
		"DATASET_UNAVAILABLE",
		"Required dataset could not be loaded",
		http.StatusServiceUnavailable,
	)

	ErrInvalidLimit = New(
		"INVALID_LIMIT",
		"Invalid limit value",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
