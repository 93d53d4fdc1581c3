package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid request parameter")
	ErrDateInvalid        = errors.New("invalid date format")
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceExist       = errors.New("service already registered")
	ErrSourceUnknown      = errors.New("unknown review source")
	ErrSentimentUnknown   = errors.New("unknown sentiment filter")
	ErrNothingToAnalyze   = errors.New("no reviews to analyze in the requested range")
	ErrNotEnoughData      = errors.New("not enough reviews for network analysis")
	ErrAnalysisInProgress = errors.New("analysis already running for this service")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrDateInvalid:        BadRequest,
	ErrServiceNotFound:    NotFound,
	ErrServiceExist:       BadRequest,
	ErrSourceUnknown:      BadRequest,
	ErrSentimentUnknown:   BadRequest,
	ErrNothingToAnalyze:   NotFound,
	ErrNotEnoughData:      BadRequest,
	ErrAnalysisInProgress: Conflict,
	UnExpectedError:       InternalServerError,
}
